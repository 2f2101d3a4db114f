package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelhub/internal/domain/discount"
	"hotelhub/internal/domain/roompackage"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDiscountNotFound       = errs.New("discount not found")
	ErrDiscountNameTaken      = errs.New("a discount with this name already exists")
	ErrDiscountSetConflict    = errs.New("a discount already exists for the same packages in an overlapping date range")
	ErrDiscountWindowMismatch = errs.New("discount dates do not overlap an applicable package's dates")
	ErrFixedValueTooLarge     = errs.New("fixed discount value exceeds the minimum applicable package price")
)

type CreateDiscountParams struct {
	Name               string
	Description        string
	Kind               string
	Value              float64
	ApplicablePackages []uuid.UUID
	StartDate          time.Time
	EndDate            time.Time
}

type UpdateDiscountParams = CreateDiscountParams

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, params CreateDiscountParams) (*queries.DiscountView, error)
	UpdateDiscount(ctx context.Context, id uuid.UUID, params UpdateDiscountParams) (*queries.DiscountView, error)
	DeleteDiscount(ctx context.Context, id uuid.UUID) error
}

type discountCommandsImpl struct {
	discountRepo    DiscountRepository
	packageRepo     PackageRepository
	discountQueries queries.DiscountQueries
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewDiscountCommands(
	discountRepo DiscountRepository,
	packageRepo PackageRepository,
	discountQueries queries.DiscountQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) DiscountCommands {
	return &discountCommandsImpl{
		discountRepo:    discountRepo,
		packageRepo:     packageRepo,
		discountQueries: discountQueries,
		db:              db,
		clock:           clk,
	}
}

func (c *discountCommandsImpl) CreateDiscount(ctx context.Context, params CreateDiscountParams) (*queries.DiscountView, error) {
	d, err := c.validate(ctx, params, uuid.Nil)
	if err != nil {
		return nil, err
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	code, err := c.discountRepo.Create(ctx, tx, d)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	slog.Info("discount created", "discount_id", d.ID(), "code", code)

	return c.discountQueries.GetDiscount(ctx, d.ID())
}

func (c *discountCommandsImpl) UpdateDiscount(ctx context.Context, id uuid.UUID, params UpdateDiscountParams) (*queries.DiscountView, error) {
	existing, err := c.discountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	validated, err := c.validate(ctx, params, id)
	if err != nil {
		return nil, err
	}

	final := discount.ReconstructDiscount(
		existing.ID(),
		existing.Code(),
		validated.Name(),
		validated.Description(),
		validated.Kind(),
		validated.Value(),
		validated.ApplicablePackages(),
		validated.StartDate(),
		validated.EndDate(),
		existing.CreatedAt(),
		c.clock.Now(),
	)

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err = c.discountRepo.Update(ctx, tx, final); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return c.discountQueries.GetDiscount(ctx, id)
}

func (c *discountCommandsImpl) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	if err := c.discountRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDiscountNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// validate runs every write-path invariant the read-side resolver relies
// on. excludeID carves the discount being updated out of the uniqueness
// checks; it is uuid.Nil on create.
func (c *discountCommandsImpl) validate(ctx context.Context, params CreateDiscountParams, excludeID uuid.UUID) (*discount.Discount, error) {
	d, err := discount.NewDiscount(
		params.Name,
		params.Description,
		discount.Kind(params.Kind),
		params.Value,
		params.ApplicablePackages,
		params.StartDate,
		params.EndDate,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err = c.checkNameUnique(ctx, d, excludeID); err != nil {
		return nil, err
	}

	targets, err := c.targetPackages(ctx, d)
	if err != nil {
		return nil, err
	}

	if d.Kind() == discount.KindFixed {
		if err = checkFixedBound(d, targets); err != nil {
			return nil, err
		}
	}

	if !d.IsGlobal() {
		for _, pkg := range targets {
			if !pkg.OverlapsWindow(d.StartDate(), d.EndDate()) {
				return nil, errs.Mark(
					errs.Newf("discount window misses package %s", pkg.Code()),
					ErrDiscountWindowMismatch,
				)
			}
		}
	}

	if err = c.checkSetUnique(ctx, d, excludeID); err != nil {
		return nil, err
	}

	return d, nil
}

func (c *discountCommandsImpl) checkNameUnique(ctx context.Context, d *discount.Discount, excludeID uuid.UUID) error {
	existing, err := c.discountRepo.FindByName(ctx, d.Name())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.ID() != excludeID {
		return ErrDiscountNameTaken
	}
	return nil
}

// targetPackages resolves the packages the discount prices: the listed set,
// or every package for a global discount.
func (c *discountCommandsImpl) targetPackages(ctx context.Context, d *discount.Discount) ([]*roompackage.RoomPackage, error) {
	if d.IsGlobal() {
		all, err := c.packageRepo.ListAll(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return all, nil
	}

	pkgs, err := c.packageRepo.ListByIDs(ctx, d.ApplicablePackages())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(pkgs) != len(d.ApplicablePackages()) {
		return nil, ErrPackageNotFound
	}
	return pkgs, nil
}

// checkFixedBound rejects a fixed discount that could drive any applicable
// package's nightly price negative. The read-side resolver never clamps, so
// this is the only guard.
func checkFixedBound(d *discount.Discount, targets []*roompackage.RoomPackage) error {
	if len(targets) == 0 {
		return nil
	}
	min := targets[0].BasePrice()
	for _, pkg := range targets[1:] {
		if pkg.BasePrice() < min {
			min = pkg.BasePrice()
		}
	}
	if d.Value() > min {
		return errs.Mark(
			errs.Newf("fixed discount %.2f exceeds minimum package price %.2f", d.Value(), min),
			ErrFixedValueTooLarge,
		)
	}
	return nil
}

// checkSetUnique enforces at most one discount per exact applicable-package
// set for any overlapping window; global discounts form their own class.
func (c *discountCommandsImpl) checkSetUnique(ctx context.Context, d *discount.Discount, excludeID uuid.UUID) error {
	all, err := c.discountRepo.ListAll(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	for _, other := range all {
		if other.ID() == excludeID {
			continue
		}
		if d.SameApplicableSet(other) && d.WindowOverlaps(other) {
			return ErrDiscountSetConflict
		}
	}
	return nil
}
