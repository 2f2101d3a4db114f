package readstore

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type FeedbackReadStore struct {
	db repository.DBTX
}

func NewFeedbackReadStore(db repository.DBTX) *FeedbackReadStore {
	return &FeedbackReadStore{db: db}
}

const feedbackViewQuery = `
	SELECT f.id, f.user_id, f.package_id, COALESCE(p.name, '') AS package_name,
	       f.rating, f.comment, f.created_at
	FROM feedbacks f
	LEFT JOIN room_packages p ON p.id = f.package_id`

type feedbackViewRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PackageID   uuid.UUID
	PackageName string
	Rating      int32
	Comment     string
	CreatedAt   pgtype.Timestamptz
}

func (r *FeedbackReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FeedbackView, error) {
	rows, err := r.db.Query(ctx, feedbackViewQuery+`
	WHERE f.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find feedback by ID", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[feedbackViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("feedback not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan feedback row", err)
	}
	return toFeedbackView(row), nil
}

func (r *FeedbackReadStore) ListAll(ctx context.Context) ([]*queries.FeedbackView, error) {
	rows, err := r.db.Query(ctx, feedbackViewQuery+`
	ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list feedbacks", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[feedbackViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan feedback rows", err)
	}
	views := make([]*queries.FeedbackView, len(raw))
	for i, row := range raw {
		views[i] = toFeedbackView(row)
	}
	return views, nil
}

func toFeedbackView(row feedbackViewRow) *queries.FeedbackView {
	return &queries.FeedbackView{
		ID:          row.ID,
		UserID:      row.UserID,
		PackageID:   row.PackageID,
		PackageName: row.PackageName,
		Rating:      int(row.Rating),
		Comment:     row.Comment,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
