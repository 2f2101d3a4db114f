package api

import (
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedbackCommands commands.FeedbackCommands
	feedbackQueries  queries.FeedbackQueries
}

func NewFeedbackHandler(feedbackCommands commands.FeedbackCommands, feedbackQueries queries.FeedbackQueries) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackCommands: feedbackCommands,
		feedbackQueries:  feedbackQueries,
	}
}

// @Summary Create feedback
// @Description Leave a rating and comment for a package
// @Tags feedbacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFeedbackRequest true "Feedback request"
// @Success 201 {object} resdto.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user id missing from context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.feedbackCommands.CreateFeedback(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPackageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFeedbackView(view))
}

// @Summary List feedbacks
// @Tags feedbacks
// @Produce json
// @Success 200 {array} resdto.FeedbackResponse
// @Router /feedbacks [get]
func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	views, err := h.feedbackQueries.ListFeedbacks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeedbackViews(views))
}

// @Summary Get feedback
// @Tags feedbacks
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} resdto.FeedbackResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /feedbacks/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid feedback ID format", nil)
		return
	}

	view, err := h.feedbackQueries.GetFeedback(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrFeedbackNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Feedback not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeedbackView(view))
}
