package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrNoRoomsAvailable    = errs.New("no available rooms for the selected dates")
	ErrInvalidStayRange    = errs.New("invalid stay range")
	ErrInvalidBookingState = errs.New("invalid booking state")
)

type ReserveBookingParams struct {
	PackageID    uuid.UUID
	UserID       uuid.UUID
	CheckInDate  time.Time
	CheckOutDate time.Time
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	TotalAmount  float64
}

type UpdateGuestDetailsParams struct {
	GuestName  *string
	GuestEmail *string
	GuestPhone *string
}

type BookingCommands interface {
	ReserveBooking(ctx context.Context, params ReserveBookingParams) (*queries.BookingView, error)
	ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	UpdateGuestDetails(ctx context.Context, id uuid.UUID, params UpdateGuestDetailsParams) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	packageRepo    PackageRepository
	roomTypeRepo   RoomTypeRepository
	bookingQueries queries.BookingQueries
	db             *pgxpool.Pool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	roomTypeRepo RoomTypeRepository,
	bookingQueries queries.BookingQueries,
	db *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		packageRepo:    packageRepo,
		roomTypeRepo:   roomTypeRepo,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

// ReserveBooking creates a pending booking after an advisory availability
// check. The authoritative capacity guard runs at confirmation time under a
// transaction; this pre-check only rejects requests that are already
// hopeless at reservation time.
func (c *bookingCommandsImpl) ReserveBooking(ctx context.Context, params ReserveBookingParams) (*queries.BookingView, error) {
	stay, err := booking.NewStayRange(params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	totalRooms, err := c.packageInventory(ctx, params.PackageID)
	if err != nil {
		return nil, err
	}

	count, err := c.bookingRepo.CountConfirmedOverlapping(ctx, nil, params.PackageID, stay, uuid.Nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count >= totalRooms {
		return nil, ErrNoRoomsAvailable
	}

	b, err := booking.NewBooking(
		params.PackageID,
		params.UserID,
		stay,
		params.GuestName,
		params.GuestEmail,
		params.GuestPhone,
		params.TotalAmount,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.bookingRepo.Create(ctx, b)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetBooking(ctx, id)
}

// ConfirmBooking flips a pending booking to confirmed behind a per-package
// advisory lock and a re-count of the overlapping confirmed bookings. Two
// concurrent confirms against the last free unit queue on the lock; the loser
// runs its count after the winner commits, sees the capacity consumed and
// aborts.
func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	b, err := c.bookingRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err = b.Confirm(); err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingState)
	}

	totalRooms, err := c.packageInventory(ctx, b.PackageID())
	if err != nil {
		return nil, err
	}

	if err = c.bookingRepo.LockPackageForConfirm(ctx, tx, b.PackageID()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	count, err := c.bookingRepo.CountConfirmedOverlapping(ctx, tx, b.PackageID(), b.Stay(), b.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count >= totalRooms {
		return nil, ErrNoRoomsAvailable
	}

	if err = c.bookingRepo.UpdateStatus(ctx, tx, id, booking.StatusConfirmed); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	slog.Info("booking confirmed", "booking_id", id, "package_id", b.PackageID())

	return c.bookingQueries.GetBooking(ctx, id)
}

// UpdateBookingStatus is the admin's unconditional status override,
// last-write-wins. Confirmation through this path still funnels through
// ConfirmBooking so the capacity guard cannot be bypassed.
func (c *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	s := booking.Status(status)
	if !s.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, ErrDomainValidation)
	}

	if s == booking.StatusConfirmed {
		return c.ConfirmBooking(ctx, id)
	}

	if _, err := c.bookingRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, nil, id, s); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetBooking(ctx, id)
}

func (c *bookingCommandsImpl) UpdateGuestDetails(ctx context.Context, id uuid.UUID, params UpdateGuestDetailsParams) (*queries.BookingView, error) {
	if _, err := c.bookingRepo.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.bookingRepo.UpdateGuestDetails(ctx, id, params.GuestName, params.GuestEmail, params.GuestPhone); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetBooking(ctx, id)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := c.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// packageInventory resolves the package's room type inventory, surfacing
// the malformed-reference case as NotFound for single-booking flows.
func (c *bookingCommandsImpl) packageInventory(ctx context.Context, packageID uuid.UUID) (int, error) {
	pkg, err := c.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrPackageNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rt, err := c.roomTypeRepo.FindByID(ctx, pkg.RoomTypeID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrRoomTypeNotFound
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rt.TotalRooms(), nil
}
