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
)

type RoomTypeHandler struct {
	roomTypeCommands commands.RoomTypeCommands
	roomTypeQueries  queries.RoomTypeQueries
}

func NewRoomTypeHandler(roomTypeCommands commands.RoomTypeCommands, roomTypeQueries queries.RoomTypeQueries) *RoomTypeHandler {
	return &RoomTypeHandler{
		roomTypeCommands: roomTypeCommands,
		roomTypeQueries:  roomTypeQueries,
	}
}

// @Summary List room types
// @Description List all room type inventories
// @Tags room-types
// @Produce json
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.roomTypeQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomTypeViews(views))
}

// @Summary Create room type
// @Description Create a room type with its total inventory
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /room-types [post]
func (h *RoomTypeHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.roomTypeCommands.CreateRoomType(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRoomTypeExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "A room type with this name already exists", nil)
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": id.String(),
	})
}
