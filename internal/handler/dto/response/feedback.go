package response

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FeedbackResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PackageID   uuid.UUID `json:"package_id"`
	PackageName string    `json:"package_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromFeedbackView(v *queries.FeedbackView) *FeedbackResponse {
	var resp FeedbackResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromFeedbackViews(views []*queries.FeedbackView) []*FeedbackResponse {
	res := make([]*FeedbackResponse, len(views))
	for i, v := range views {
		res[i] = FromFeedbackView(v)
	}
	return res
}
