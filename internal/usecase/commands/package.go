package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelhub/internal/domain/roompackage"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRoomTypeNotFound        = errs.New("room type not found")
	ErrPackageNotFound         = errs.New("package not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreatePackageParams struct {
	Name       string
	RoomTypeID uuid.UUID
	BasePrice  float64
	Capacity   int
	Features   []string
	ImageURL   *string
	StartDate  time.Time
	EndDate    time.Time
}

type UpdatePackageParams = CreatePackageParams

type PackageCommands interface {
	CreatePackage(ctx context.Context, params CreatePackageParams) (*queries.PackageView, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, params UpdatePackageParams) (*queries.PackageView, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
}

type packageCommandsImpl struct {
	packageRepo    PackageRepository
	roomTypeRepo   RoomTypeRepository
	packageQueries queries.PackageQueries
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewPackageCommands(
	packageRepo PackageRepository,
	roomTypeRepo RoomTypeRepository,
	packageQueries queries.PackageQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) PackageCommands {
	return &packageCommandsImpl{
		packageRepo:    packageRepo,
		roomTypeRepo:   roomTypeRepo,
		packageQueries: packageQueries,
		db:             db,
		clock:          clk,
	}
}

func (c *packageCommandsImpl) CreatePackage(ctx context.Context, params CreatePackageParams) (*queries.PackageView, error) {
	if _, err := c.roomTypeRepo.FindByID(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pkg, err := roompackage.NewRoomPackage(
		params.Name,
		params.RoomTypeID,
		params.BasePrice,
		params.Capacity,
		params.Features,
		params.ImageURL,
		params.StartDate,
		params.EndDate,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
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

	code, err := c.packageRepo.Create(ctx, tx, pkg)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	slog.Info("package created", "package_id", pkg.ID(), "code", code)

	return c.packageQueries.GetPackage(ctx, pkg.ID())
}

func (c *packageCommandsImpl) UpdatePackage(ctx context.Context, id uuid.UUID, params UpdatePackageParams) (*queries.PackageView, error) {
	existing, err := c.packageRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err = c.roomTypeRepo.FindByID(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := roompackage.NewRoomPackage(
		params.Name,
		params.RoomTypeID,
		params.BasePrice,
		params.Capacity,
		params.Features,
		params.ImageURL,
		params.StartDate,
		params.EndDate,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// The id and assigned code survive the edit.
	final := roompackage.ReconstructRoomPackage(
		existing.ID(),
		existing.Code(),
		updated.Name(),
		updated.RoomTypeID(),
		updated.BasePrice(),
		updated.Capacity(),
		updated.Features(),
		updated.ImageURL(),
		updated.StartDate(),
		updated.EndDate(),
		existing.CreatedAt(),
		c.clock.Now(),
	)

	if err = c.packageRepo.Update(ctx, final); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.packageQueries.GetPackage(ctx, id)
}

func (c *packageCommandsImpl) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := c.packageRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPackageNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
