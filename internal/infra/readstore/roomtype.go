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

type RoomTypeReadStore struct {
	db repository.DBTX
}

func NewRoomTypeReadStore(db repository.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: db}
}

type roomTypeViewRow struct {
	ID          uuid.UUID
	Name        string
	TotalRooms  int32
	Description string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r *RoomTypeReadStore) ListAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, total_rooms, description, created_at, updated_at
		 FROM room_types ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[roomTypeViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan room type rows", err)
	}

	views := make([]*queries.RoomTypeView, len(raw))
	for i, row := range raw {
		views[i] = &queries.RoomTypeView{
			ID:          row.ID,
			Name:        row.Name,
			TotalRooms:  int(row.TotalRooms),
			Description: row.Description,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views, nil
}
