package repository

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, package_id, user_id, check_in_date, check_out_date,
	guest_name, guest_email, guest_phone, total_amount, status, created_at, updated_at`

type bookingRow struct {
	ID           uuid.UUID
	PackageID    uuid.UUID
	UserID       uuid.UUID
	CheckInDate  pgtype.Date
	CheckOutDate pgtype.Date
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	TotalAmount  pgtype.Numeric
	Status       string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, r.db, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

// FindByIDForUpdate locks the booking row so a concurrent confirm of the same
// booking waits behind this transaction.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*booking.Booking, error) {
	return r.findOne(ctx, tx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, package_id, user_id, check_in_date, check_out_date,
		                       guest_name, guest_email, guest_phone, total_amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID(), b.PackageID(), b.UserID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.GuestName(), b.GuestEmail(), b.GuestPhone(),
		pgconv.NumericFromFloat64(b.TotalAmount()), string(b.Status()),
	)
	if err != nil {
		return uuid.Nil, classifyErr("failed to create booking", err)
	}
	return b.ID(), nil
}

// LockPackageForConfirm takes a transaction-scoped advisory lock keyed on the
// package. Row locks alone cannot serialize two confirms racing for the last
// room: with no confirmed rows yet there is nothing to lock, so both counts
// would see zero. The advisory lock makes the count-then-confirm sequence
// mutually exclusive per package; it releases on commit or rollback.
func (r *BookingRepository) LockPackageForConfirm(ctx context.Context, tx pgx.Tx, packageID uuid.UUID) error {
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext('bookings_confirm'), hashtext($1::text))`,
		packageID.String(),
	); err != nil {
		return infra.WrapRepoErr("failed to acquire booking confirm lock", err)
	}
	return nil
}

// CountConfirmedOverlapping counts confirmed bookings of the package whose
// stay overlaps the given half-open range. Callers checking capacity must hold
// the package confirm lock so the count cannot go stale before commit.
func (r *BookingRepository) CountConfirmedOverlapping(ctx context.Context, tx pgx.Tx, packageID uuid.UUID, stay booking.StayRange, excludeID uuid.UUID) (int, error) {
	db := r.db
	if tx != nil {
		db = tx
	}

	var count int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE package_id = $1
		   AND status = 'confirmed'
		   AND id <> $2
		   AND check_in_date < $3
		   AND check_out_date > $4`,
		packageID, excludeID,
		pgconv.DateToPgtype(stay.CheckOut()), pgconv.DateToPgtype(stay.CheckIn()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status booking.Status) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	tag, err := db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateGuestDetails(ctx context.Context, id uuid.UUID, name, email, phone *string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		 SET guest_name  = COALESCE($2, guest_name),
		     guest_email = COALESCE($3, guest_email),
		     guest_phone = COALESCE($4, guest_phone),
		     updated_at  = now()
		 WHERE id = $1`,
		id, pgconv.StringPtrToPgtype(name), pgconv.StringPtrToPgtype(email), pgconv.StringPtrToPgtype(phone),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest details", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) findOne(ctx context.Context, db DBTX, sql string, id uuid.UUID) (*booking.Booking, error) {
	rows, err := db.Query(ctx, sql, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[bookingRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking row", err)
	}
	return toBooking(row)
}

func toBooking(row bookingRow) (*booking.Booking, error) {
	amount, err := pgconv.Float64FromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking amount", err)
	}
	stay, err := booking.NewStayRange(pgconv.TimeFromDate(row.CheckInDate), pgconv.TimeFromDate(row.CheckOutDate))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid stay range", err)
	}
	return booking.ReconstructBooking(
		row.ID, row.PackageID, row.UserID,
		stay,
		row.GuestName, row.GuestEmail, row.GuestPhone,
		amount,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
