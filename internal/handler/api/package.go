package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type PackageHandler struct {
	packageCommands commands.PackageCommands
	packageQueries  queries.PackageQueries
}

func NewPackageHandler(packageCommands commands.PackageCommands, packageQueries queries.PackageQueries) *PackageHandler {
	return &PackageHandler{
		packageCommands: packageCommands,
		packageQueries:  packageQueries,
	}
}

// @Summary List packages
// @Description List room packages with availability and effective pricing
// @Tags packages
// @Produce json
// @Param check_in query string false "Candidate check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Candidate check-out date (YYYY-MM-DD)"
// @Param discount_window_start query string false "Offer window filter start (YYYY-MM-DD)"
// @Param discount_window_end query string false "Offer window filter end (YYYY-MM-DD)"
// @Success 200 {array} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	filter, err := h.parseFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}

	views, err := h.packageQueries.ListAvailablePackages(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out date must be after check-in date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary Get package
// @Description Get one package with availability and effective pricing
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package ID format", nil)
		return
	}

	view, err := h.packageQueries.GetPackage(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Fully booked dates
// @Description Calendar days on which the package has zero remaining rooms
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.FullyBookedDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id}/fully-booked-dates [get]
func (h *PackageHandler) GetFullyBookedDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package ID format", nil)
		return
	}

	dates, err := h.packageQueries.GetFullyBookedDates(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FullyBookedDatesResponse{
		PackageID: id,
		Dates:     dates,
	})
}

// @Summary Create package
// @Description Create a room package; the PKG-NNN code is assigned server-side
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package request"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.packageCommands.CreatePackage(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPackageView(view))
}

// @Summary Update package
// @Description Update a room package; id and code are immutable
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Package request"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package ID format", nil)
		return
	}

	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	view, err := h.packageCommands.UpdatePackage(c.Request.Context(), id, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Delete package
// @Description Delete a room package and its bookings
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package ID format", nil)
		return
	}

	if err := h.packageCommands.DeletePackage(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PackageHandler) parseFilter(c *gin.Context) (queries.PackageFilter, error) {
	var filter queries.PackageFilter

	parse := func(name string) (*time.Time, error) {
		raw := c.Query(name)
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var err error
	if filter.CheckIn, err = parse("check_in"); err != nil {
		return filter, err
	}
	if filter.CheckOut, err = parse("check_out"); err != nil {
		return filter, err
	}
	if filter.DiscountWindowStart, err = parse("discount_window_start"); err != nil {
		return filter, err
	}
	if filter.DiscountWindowEnd, err = parse("discount_window_end"); err != nil {
		return filter, err
	}

	// Range filters only make sense as pairs.
	if (filter.CheckIn == nil) != (filter.CheckOut == nil) {
		return filter, errors.New("check_in and check_out must be provided together")
	}
	if (filter.DiscountWindowStart == nil) != (filter.DiscountWindowEnd == nil) {
		return filter, errors.New("discount window bounds must be provided together")
	}

	return filter, nil
}

func (h *PackageHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, queries.ErrPackageMalformed):
		// A package whose room type is missing behaves like an absent package
		// for single lookups; listings drop it silently.
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *PackageHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrPackageNotFound), errs.Is(err, queries.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, commands.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
	case errs.Is(err, queries.ErrPackageMalformed):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
