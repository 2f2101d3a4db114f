package repository

import (
	"context"

	"hotelhub/internal/domain/feedback"

	"github.com/google/uuid"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO feedbacks (id, user_id, package_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)`,
		f.ID(), f.UserID(), f.PackageID(), int32(f.Rating().Value()), f.Comment().String(),
	)
	if err != nil {
		return uuid.Nil, classifyErr("failed to create feedback", err)
	}
	return f.ID(), nil
}
