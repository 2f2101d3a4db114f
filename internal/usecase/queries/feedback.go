package queries

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFeedbackNotFound = errs.New("feedback not found")

type FeedbackReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FeedbackView, error)
	ListAll(ctx context.Context) ([]*FeedbackView, error)
}

type FeedbackQueries interface {
	GetFeedback(ctx context.Context, id uuid.UUID) (*FeedbackView, error)
	ListFeedbacks(ctx context.Context) ([]*FeedbackView, error)
}

type feedbackQueriesImpl struct {
	feedbacks FeedbackReadStore
}

func NewFeedbackQueries(feedbacks FeedbackReadStore) FeedbackQueries {
	return &feedbackQueriesImpl{feedbacks: feedbacks}
}

func (q *feedbackQueriesImpl) GetFeedback(ctx context.Context, id uuid.UUID) (*FeedbackView, error) {
	view, err := q.feedbacks.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *feedbackQueriesImpl) ListFeedbacks(ctx context.Context) ([]*FeedbackView, error) {
	return q.feedbacks.ListAll(ctx)
}
