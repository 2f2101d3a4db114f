package request

import (
	"hotelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	PackageID uuid.UUID `json:"package_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateFeedbackRequest) ToParams(userID uuid.UUID) commands.CreateFeedbackParams {
	return commands.CreateFeedbackParams{
		UserID:    userID,
		PackageID: r.PackageID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
