package commands

import (
	"context"

	"hotelhub/internal/domain/feedback"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f *feedback.Feedback) (uuid.UUID, error)
}

type CreateFeedbackParams struct {
	UserID    uuid.UUID
	PackageID uuid.UUID
	Rating    int
	Comment   string
}

type FeedbackCommands interface {
	CreateFeedback(ctx context.Context, params CreateFeedbackParams) (*queries.FeedbackView, error)
}

type feedbackCommandsImpl struct {
	feedbackRepo    FeedbackRepository
	packageRepo     PackageRepository
	feedbackQueries queries.FeedbackQueries
	clock           clock.Clock
}

func NewFeedbackCommands(
	feedbackRepo FeedbackRepository,
	packageRepo PackageRepository,
	feedbackQueries queries.FeedbackQueries,
	clk clock.Clock,
) FeedbackCommands {
	return &feedbackCommandsImpl{
		feedbackRepo:    feedbackRepo,
		packageRepo:     packageRepo,
		feedbackQueries: feedbackQueries,
		clock:           clk,
	}
}

func (c *feedbackCommandsImpl) CreateFeedback(ctx context.Context, params CreateFeedbackParams) (*queries.FeedbackView, error) {
	if _, err := c.packageRepo.FindByID(ctx, params.PackageID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	f, err := feedback.NewFeedback(uuid.Nil, params.UserID, params.PackageID, params.Rating, params.Comment, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.feedbackRepo.Create(ctx, f)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.feedbackQueries.GetFeedback(ctx, id)
}
