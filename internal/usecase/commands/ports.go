package commands

import (
	"context"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/discount"
	"hotelhub/internal/domain/roompackage"
	"hotelhub/internal/domain/roomtype"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error)
	FindByName(ctx context.Context, name string) (*roomtype.RoomType, error)
	Create(ctx context.Context, rt *roomtype.RoomType) (uuid.UUID, error)
}

type PackageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*roompackage.RoomPackage, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*roompackage.RoomPackage, error)
	ListAll(ctx context.Context) ([]*roompackage.RoomPackage, error)
	// Create assigns the next PKG-NNN code under a row lock and inserts
	// the package within tx.
	Create(ctx context.Context, tx pgx.Tx, pkg *roompackage.RoomPackage) (string, error)
	Update(ctx context.Context, pkg *roompackage.RoomPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error)
	FindByName(ctx context.Context, name string) (*discount.Discount, error)
	ListAll(ctx context.Context) ([]*discount.Discount, error)
	// Create assigns the next DIS-NNN code under a row lock and inserts
	// the discount and its applicable-package rows within tx.
	Create(ctx context.Context, tx pgx.Tx, d *discount.Discount) (string, error)
	Update(ctx context.Context, tx pgx.Tx, d *discount.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired purges discounts whose window ended before the given
	// instant. Used by the daily sweep.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindByIDForUpdate locks the booking row for the confirm transaction.
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// LockPackageForConfirm serializes confirms per package for the life of
	// the transaction so two of them cannot both pass the capacity check.
	LockPackageForConfirm(ctx context.Context, tx pgx.Tx, packageID uuid.UUID) error
	// CountConfirmedOverlapping applies the half-open overlap test;
	// excludeID removes the booking being confirmed from its own count.
	CountConfirmedOverlapping(ctx context.Context, tx pgx.Tx, packageID uuid.UUID, stay booking.StayRange, excludeID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.Status) error
	UpdateGuestDetails(ctx context.Context, id uuid.UUID, name, email, phone *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
