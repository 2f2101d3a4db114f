package repository

import (
	"context"

	"hotelhub/internal/domain/roomtype"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomTypeRepository struct {
	db DBTX
}

func NewRoomTypeRepository(db DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

const roomTypeColumns = `id, name, total_rooms, description, created_at, updated_at`

type roomTypeRow struct {
	ID          uuid.UUID
	Name        string
	TotalRooms  int32
	Description string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	row, err := r.scanOne(ctx, `SELECT `+roomTypeColumns+` FROM room_types WHERE id = $1`, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return toRoomType(row), nil
}

func (r *RoomTypeRepository) FindByName(ctx context.Context, name string) (*roomtype.RoomType, error) {
	row, err := r.scanOne(ctx, `SELECT `+roomTypeColumns+` FROM room_types WHERE name = $1`, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by name", err)
	}
	return toRoomType(row), nil
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *roomtype.RoomType) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO room_types (id, name, total_rooms, description) VALUES ($1, $2, $3, $4)`,
		rt.ID(), rt.Name(), int32(rt.TotalRooms()), rt.Description(),
	)
	if err != nil {
		return uuid.Nil, classifyErr("failed to create room type", err)
	}
	return rt.ID(), nil
}

func (r *RoomTypeRepository) scanOne(ctx context.Context, sql string, args ...any) (roomTypeRow, error) {
	var row roomTypeRow
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&row.ID, &row.Name, &row.TotalRooms, &row.Description, &row.CreatedAt, &row.UpdatedAt,
	)
	return row, err
}

func toRoomType(row roomTypeRow) *roomtype.RoomType {
	return roomtype.ReconstructRoomType(
		row.ID,
		row.Name,
		int(row.TotalRooms),
		row.Description,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
