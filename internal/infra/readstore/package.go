package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PackageReadStore struct {
	db repository.DBTX
}

func NewPackageReadStore(db repository.DBTX) *PackageReadStore {
	return &PackageReadStore{db: db}
}

// The room type is LEFT-joined: a package whose reference dangles still
// surfaces as a row, with TotalRooms nil, so the read side can decide how to
// treat it instead of the row silently vanishing from an inner join.
const packageViewQuery = `
	SELECT p.id, p.code, p.name, p.room_type_id,
	       COALESCE(rt.name, '') AS room_type_name,
	       rt.total_rooms,
	       p.base_price, p.capacity, p.features, p.image_url,
	       p.start_date, p.end_date, p.created_at, p.updated_at
	FROM room_packages p
	LEFT JOIN room_types rt ON rt.id = p.room_type_id`

type packageViewRow struct {
	ID           uuid.UUID
	Code         string
	Name         string
	RoomTypeID   uuid.UUID
	RoomTypeName string
	TotalRooms   pgtype.Int4
	BasePrice    pgtype.Numeric
	Capacity     int32
	Features     []string
	ImageURL     pgtype.Text
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (r *PackageReadStore) List(ctx context.Context, filter queries.PackageFilter) ([]*queries.PackageRow, error) {
	sql := packageViewQuery
	var conds []string
	var args []any
	appendWindowOverlap := func(start, end time.Time) {
		conds = append(conds, fmt.Sprintf("p.start_date <= $%d AND p.end_date >= $%d", len(args)+2, len(args)+1))
		args = append(args, pgconv.DateToPgtype(start), pgconv.DateToPgtype(end))
	}
	// Both filter pairs narrow the listing to packages whose offer window
	// overlaps the requested dates.
	if filter.CheckIn != nil && filter.CheckOut != nil {
		appendWindowOverlap(*filter.CheckIn, *filter.CheckOut)
	}
	if filter.DiscountWindowStart != nil && filter.DiscountWindowEnd != nil {
		appendWindowOverlap(*filter.DiscountWindowStart, *filter.DiscountWindowEnd)
	}
	if len(conds) > 0 {
		sql += `
	WHERE ` + strings.Join(conds, " AND ")
	}
	sql += `
	ORDER BY p.code`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[packageViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan package rows", err)
	}

	result := make([]*queries.PackageRow, 0, len(raw))
	for _, row := range raw {
		pr, convErr := toPackageRow(row)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, pr)
	}
	return result, nil
}

func (r *PackageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PackageRow, error) {
	rows, err := r.db.Query(ctx, packageViewQuery+`
	WHERE p.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[packageViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan package row", err)
	}
	return toPackageRow(row)
}

func toPackageRow(row packageViewRow) (*queries.PackageRow, error) {
	basePrice, err := pgconv.Float64FromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package base price", err)
	}

	var totalRooms *int
	if tr := pgconv.Int32PtrFromPgtype(row.TotalRooms); tr != nil {
		n := int(*tr)
		totalRooms = &n
	}

	return &queries.PackageRow{
		ID:           row.ID,
		Code:         row.Code,
		Name:         row.Name,
		RoomTypeID:   row.RoomTypeID,
		RoomTypeName: row.RoomTypeName,
		TotalRooms:   totalRooms,
		BasePrice:    basePrice,
		Capacity:     int(row.Capacity),
		Features:     row.Features,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageURL),
		StartDate:    pgconv.TimeFromDate(row.StartDate),
		EndDate:      pgconv.TimeFromDate(row.EndDate),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
