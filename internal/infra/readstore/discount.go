package readstore

import (
	"context"
	"time"

	"hotelhub/internal/domain/discount"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DiscountReadStore reconstructs full domain discounts rather than flat
// views: the pricing resolver needs the entity's window and applicability
// logic, not a projection.
type DiscountReadStore struct {
	db repository.DBTX
}

func NewDiscountReadStore(db repository.DBTX) *DiscountReadStore {
	return &DiscountReadStore{db: db}
}

const discountViewQuery = `
	SELECT id, code, name, description, kind, value, start_date, end_date, created_at, updated_at
	FROM discounts`

type discountViewRow struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	Kind        string
	Value       pgtype.Numeric
	StartDate   pgtype.Timestamptz
	EndDate     pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r *DiscountReadStore) ListAll(ctx context.Context) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx, discountViewQuery+`
	ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	return r.collect(ctx, rows)
}

// ActiveAt returns discounts whose inclusive window contains t, newest
// created first so the pricing tie-break can rely on the ordering.
func (r *DiscountReadStore) ActiveAt(ctx context.Context, t time.Time) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx, discountViewQuery+`
	WHERE start_date <= $1 AND end_date >= $1
	ORDER BY created_at DESC`, pgconv.TimeToPgtype(t))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active discounts", err)
	}
	return r.collect(ctx, rows)
}

func (r *DiscountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	rows, err := r.db.Query(ctx, discountViewQuery+`
	WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount by ID", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[discountViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan discount row", err)
	}

	sets, err := r.applicableSets(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}
	return toDomainDiscount(row, sets[row.ID])
}

func (r *DiscountReadStore) collect(ctx context.Context, rows pgx.Rows) ([]*discount.Discount, error) {
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[discountViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan discount rows", err)
	}

	ids := make([]uuid.UUID, len(raw))
	for i, row := range raw {
		ids[i] = row.ID
	}
	sets, err := r.applicableSets(ctx, ids)
	if err != nil {
		return nil, err
	}

	discounts := make([]*discount.Discount, 0, len(raw))
	for _, row := range raw {
		d, convErr := toDomainDiscount(row, sets[row.ID])
		if convErr != nil {
			return nil, convErr
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}

func (r *DiscountReadStore) applicableSets(ctx context.Context, discountIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if len(discountIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT discount_id, package_id FROM discount_packages WHERE discount_id = ANY($1)`,
		discountIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load applicable packages", err)
	}
	type link struct {
		DiscountID uuid.UUID
		PackageID  uuid.UUID
	}
	links, err := pgx.CollectRows(rows, pgx.RowToStructByPos[link])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan applicable packages", err)
	}
	sets := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, l := range links {
		sets[l.DiscountID] = append(sets[l.DiscountID], l.PackageID)
	}
	return sets, nil
}

func toDomainDiscount(row discountViewRow, packageIDs []uuid.UUID) (*discount.Discount, error) {
	value, err := pgconv.Float64FromNumeric(row.Value)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount value", err)
	}
	return discount.ReconstructDiscount(
		row.ID,
		row.Code,
		row.Name,
		row.Description,
		discount.Kind(row.Kind),
		value,
		packageIDs,
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimeFromPgtype(row.EndDate),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
