package api

import (
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
	discountQueries  queries.DiscountQueries
}

func NewDiscountHandler(discountCommands commands.DiscountCommands, discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
		discountQueries:  discountQueries,
	}
}

// @Summary List discounts
// @Description List all discounts, including inactive ones
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DiscountResponse
// @Router /discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	views, err := h.discountQueries.ListDiscounts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountViews(views))
}

// @Summary List active discounts
// @Description List discounts whose window contains the current instant
// @Tags discounts
// @Produce json
// @Success 200 {array} resdto.DiscountResponse
// @Router /discounts/active [get]
func (h *DiscountHandler) ListActiveDiscounts(c *gin.Context) {
	views, err := h.discountQueries.ListActiveDiscounts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountViews(views))
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [get]
func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID format", nil)
		return
	}

	view, err := h.discountQueries.GetDiscount(c.Request.Context(), id)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountView(view))
}

// @Summary Create discount
// @Description Create a discount; the DIS-NNN code is assigned server-side
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount request"
// @Success 201 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts [post]
func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.discountCommands.CreateDiscount(c.Request.Context(), params)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDiscountView(view))
}

// @Summary Update discount
// @Description Update a discount; id and code are immutable
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Discount request"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /discounts/{id} [put]
func (h *DiscountHandler) UpdateDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID format", nil)
		return
	}

	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.discountCommands.UpdateDiscount(c.Request.Context(), id, params)
	if err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDiscountView(view))
}

// @Summary Delete discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount ID format", nil)
		return
	}

	if err := h.discountCommands.DeleteDiscount(c.Request.Context(), id); err != nil {
		h.respondDiscountError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DiscountHandler) respondDiscountError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrDiscountNotFound), errs.Is(err, queries.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
	case errs.Is(err, commands.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "One or more applicable packages were not found", nil)
	case errs.Is(err, commands.ErrDiscountNameTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "A discount with this name already exists", nil)
	case errs.Is(err, commands.ErrDiscountSetConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "A discount already exists for the same packages in an overlapping date range", nil)
	case errs.Is(err, commands.ErrDiscountWindowMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount dates do not overlap an applicable package's dates", nil)
	case errs.Is(err, commands.ErrFixedValueTooLarge):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Fixed discount value exceeds the minimum applicable package price", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
