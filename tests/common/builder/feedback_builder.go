//go:build unit || e2e

package builder

import (
	"time"

	"hotelhub/internal/domain/feedback"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type FeedbackBuilder struct {
	UserID    uuid.UUID
	PackageID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewFeedbackBuilder() *FeedbackBuilder {
	return &FeedbackBuilder{
		UserID:    uuid.New(),
		PackageID: uuid.New(),
		Rating:    5,
		Comment:   "Wonderful stay, great breakfast",
		CreatedAt: time.Now(),
	}
}

func (b *FeedbackBuilder) With(mutate func(*FeedbackBuilder)) *FeedbackBuilder {
	mutate(b)
	return b
}

func (b *FeedbackBuilder) BuildDomain() (*feedback.Feedback, error) {
	return feedback.NewFeedback(uuid.Nil, b.UserID, b.PackageID, b.Rating, b.Comment, b.CreatedAt)
}

func (b *FeedbackBuilder) BuildView() *queries.FeedbackView {
	return &queries.FeedbackView{
		ID:          uuid.New(),
		UserID:      b.UserID,
		PackageID:   b.PackageID,
		PackageName: "Deluxe Ocean View",
		Rating:      b.Rating,
		Comment:     b.Comment,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *FeedbackBuilder) BuildCreateRequestDTO() reqdto.CreateFeedbackRequest {
	return reqdto.CreateFeedbackRequest{
		PackageID: b.PackageID,
		Rating:    b.Rating,
		Comment:   b.Comment,
	}
}

func (b *FeedbackBuilder) WithPackageID(id uuid.UUID) *FeedbackBuilder {
	b.PackageID = id
	return b
}

func (b *FeedbackBuilder) WithRating(rating int) *FeedbackBuilder {
	b.Rating = rating
	return b
}

func (b *FeedbackBuilder) WithComment(comment string) *FeedbackBuilder {
	b.Comment = comment
	return b
}
