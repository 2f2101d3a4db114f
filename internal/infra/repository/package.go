package repository

import (
	"context"

	"hotelhub/internal/domain/roompackage"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/pkg/seqcode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PackageRepository struct {
	db DBTX
}

func NewPackageRepository(db DBTX) *PackageRepository {
	return &PackageRepository{db: db}
}

const packageColumns = `id, code, name, room_type_id, base_price, capacity, features, image_url,
	start_date, end_date, created_at, updated_at`

type packageRow struct {
	ID         uuid.UUID
	Code       string
	Name       string
	RoomTypeID uuid.UUID
	BasePrice  pgtype.Numeric
	Capacity   int32
	Features   []string
	ImageURL   pgtype.Text
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

func (r *PackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*roompackage.RoomPackage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+packageColumns+` FROM room_packages WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[packageRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan package row", err)
	}
	return toRoomPackage(row)
}

func (r *PackageRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*roompackage.RoomPackage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+packageColumns+` FROM room_packages WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages by IDs", err)
	}
	return collectPackages(rows)
}

func (r *PackageRepository) ListAll(ctx context.Context) ([]*roompackage.RoomPackage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+packageColumns+` FROM room_packages ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	return collectPackages(rows)
}

// Create assigns the next PKG-NNN code and inserts the package. The advisory
// lock serializes concurrent creators so two inserts can never mint the same
// code, even when the table is empty.
func (r *PackageRepository) Create(ctx context.Context, tx pgx.Tx, pkg *roompackage.RoomPackage) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('room_packages_code'))`); err != nil {
		return "", infra.WrapRepoErr("failed to acquire package code lock", err)
	}

	var last string
	// Length sorts before lexicographic order so PKG-1000 outranks PKG-999.
	err := tx.QueryRow(ctx, `SELECT code FROM room_packages ORDER BY length(code) DESC, code DESC LIMIT 1`).Scan(&last)
	if err != nil && !pgconv.IsNoRows(err) {
		return "", infra.WrapRepoErr("failed to read last package code", err)
	}

	code, err := seqcode.Next(roompackage.CodePrefix, last)
	if err != nil {
		return "", infra.WrapRepoErr("failed to compute next package code", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO room_packages (id, code, name, room_type_id, base_price, capacity, features, image_url, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		pkg.ID(), code, pkg.Name(), pkg.RoomTypeID(),
		pgconv.NumericFromFloat64(pkg.BasePrice()), int32(pkg.Capacity()),
		pkg.Features(), pgconv.StringPtrToPgtype(pkg.ImageURL()),
		pgconv.DateToPgtype(pkg.StartDate()), pgconv.DateToPgtype(pkg.EndDate()),
	)
	if err != nil {
		return "", classifyErr("failed to create package", err)
	}
	return code, nil
}

func (r *PackageRepository) Update(ctx context.Context, pkg *roompackage.RoomPackage) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE room_packages
		 SET name = $2, room_type_id = $3, base_price = $4, capacity = $5, features = $6,
		     image_url = $7, start_date = $8, end_date = $9, updated_at = now()
		 WHERE id = $1`,
		pkg.ID(), pkg.Name(), pkg.RoomTypeID(),
		pgconv.NumericFromFloat64(pkg.BasePrice()), int32(pkg.Capacity()),
		pkg.Features(), pgconv.StringPtrToPgtype(pkg.ImageURL()),
		pgconv.DateToPgtype(pkg.StartDate()), pgconv.DateToPgtype(pkg.EndDate()),
	)
	if err != nil {
		return classifyErr("failed to update package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room_packages WHERE id = $1`, id)
	if err != nil {
		return classifyErr("failed to delete package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func collectPackages(rows pgx.Rows) ([]*roompackage.RoomPackage, error) {
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[packageRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan package rows", err)
	}
	pkgs := make([]*roompackage.RoomPackage, 0, len(raw))
	for _, row := range raw {
		pkg, err := toRoomPackage(row)
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

func toRoomPackage(row packageRow) (*roompackage.RoomPackage, error) {
	basePrice, err := pgconv.Float64FromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package base price", err)
	}
	return roompackage.ReconstructRoomPackage(
		row.ID,
		row.Code,
		row.Name,
		row.RoomTypeID,
		basePrice,
		int(row.Capacity),
		row.Features,
		pgconv.StringPtrFromPgtype(row.ImageURL),
		pgconv.TimeFromDate(row.StartDate),
		pgconv.TimeFromDate(row.EndDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
