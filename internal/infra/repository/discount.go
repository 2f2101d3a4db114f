package repository

import (
	"context"
	"time"

	"hotelhub/internal/domain/discount"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/pkg/seqcode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountRepository struct {
	db DBTX
}

func NewDiscountRepository(db DBTX) *DiscountRepository {
	return &DiscountRepository{db: db}
}

const discountColumns = `id, code, name, description, kind, value, start_date, end_date, created_at, updated_at`

type discountRow struct {
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

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	return r.findOne(ctx, `SELECT `+discountColumns+` FROM discounts WHERE id = $1`, id)
}

func (r *DiscountRepository) FindByName(ctx context.Context, name string) (*discount.Discount, error) {
	return r.findOne(ctx, `SELECT `+discountColumns+` FROM discounts WHERE name = $1`, name)
}

func (r *DiscountRepository) ListAll(ctx context.Context) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx, `SELECT `+discountColumns+` FROM discounts ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[discountRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan discount rows", err)
	}

	sets, err := r.applicableSets(ctx)
	if err != nil {
		return nil, err
	}

	discounts := make([]*discount.Discount, 0, len(raw))
	for _, row := range raw {
		d, err := toDiscount(row, sets[row.ID])
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}

// Create assigns the next DIS-NNN code and inserts the discount together with
// its applicable-package rows. The advisory lock serializes code assignment
// across concurrent creators.
func (r *DiscountRepository) Create(ctx context.Context, tx pgx.Tx, d *discount.Discount) (string, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('discounts_code'))`); err != nil {
		return "", infra.WrapRepoErr("failed to acquire discount code lock", err)
	}

	var last string
	// Length sorts before lexicographic order so DIS-1000 outranks DIS-999.
	err := tx.QueryRow(ctx, `SELECT code FROM discounts ORDER BY length(code) DESC, code DESC LIMIT 1`).Scan(&last)
	if err != nil && !pgconv.IsNoRows(err) {
		return "", infra.WrapRepoErr("failed to read last discount code", err)
	}

	code, err := seqcode.Next(discount.CodePrefix, last)
	if err != nil {
		return "", infra.WrapRepoErr("failed to compute next discount code", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO discounts (id, code, name, description, kind, value, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID(), code, d.Name(), d.Description(), string(d.Kind()),
		pgconv.NumericFromFloat64(d.Value()),
		pgconv.TimeToPgtype(d.StartDate()), pgconv.TimeToPgtype(d.EndDate()),
	)
	if err != nil {
		return "", classifyErr("failed to create discount", err)
	}

	if err := insertApplicablePackages(ctx, tx, d.ID(), d.ApplicablePackages()); err != nil {
		return "", err
	}
	return code, nil
}

func (r *DiscountRepository) Update(ctx context.Context, tx pgx.Tx, d *discount.Discount) error {
	tag, err := tx.Exec(ctx,
		`UPDATE discounts
		 SET name = $2, description = $3, kind = $4, value = $5,
		     start_date = $6, end_date = $7, updated_at = now()
		 WHERE id = $1`,
		d.ID(), d.Name(), d.Description(), string(d.Kind()),
		pgconv.NumericFromFloat64(d.Value()),
		pgconv.TimeToPgtype(d.StartDate()), pgconv.TimeToPgtype(d.EndDate()),
	)
	if err != nil {
		return classifyErr("failed to update discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM discount_packages WHERE discount_id = $1`, d.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear applicable packages", err)
	}
	return insertApplicablePackages(ctx, tx, d.ID(), d.ApplicablePackages())
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// DeleteExpired purges discounts whose window closed before the given instant.
func (r *DiscountRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE end_date < $1`, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired discounts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DiscountRepository) findOne(ctx context.Context, sql string, arg any) (*discount.Discount, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[discountRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan discount row", err)
	}

	pkgIDs, err := r.applicableSet(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return toDiscount(row, pkgIDs)
}

func (r *DiscountRepository) applicableSet(ctx context.Context, discountID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT package_id FROM discount_packages WHERE discount_id = $1`, discountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load applicable packages", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan applicable packages", err)
	}
	return ids, nil
}

func (r *DiscountRepository) applicableSets(ctx context.Context) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT discount_id, package_id FROM discount_packages`)
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

func insertApplicablePackages(ctx context.Context, tx pgx.Tx, discountID uuid.UUID, packageIDs []uuid.UUID) error {
	for _, pkgID := range packageIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO discount_packages (discount_id, package_id) VALUES ($1, $2)`,
			discountID, pkgID,
		)
		if err != nil {
			return classifyErr("failed to link discount to package", err)
		}
	}
	return nil
}

func toDiscount(row discountRow, packageIDs []uuid.UUID) (*discount.Discount, error) {
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
