package readstore

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/pkg/pgconv"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db repository.DBTX
}

func NewBookingReadStore(db repository.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingViewQuery = `
	SELECT b.id, b.package_id, COALESCE(p.name, '') AS package_name, b.user_id,
	       b.check_in_date, b.check_out_date,
	       b.guest_name, b.guest_email, b.guest_phone,
	       b.total_amount, b.status, b.created_at, b.updated_at
	FROM bookings b
	LEFT JOIN room_packages p ON p.id = b.package_id`

type bookingViewRow struct {
	ID           uuid.UUID
	PackageID    uuid.UUID
	PackageName  string
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

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`
	WHERE b.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[bookingViewRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking row", err)
	}
	return toBookingView(row)
}

// FindPage matches guest name, guest email, or status case-insensitively and
// returns the requested page newest-first, plus the total count of matches.
func (r *BookingReadStore) FindPage(ctx context.Context, search string, limit, offset int32) ([]*queries.BookingView, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings b
		 WHERE $1 = '%%' OR b.guest_name ILIKE $1 OR b.guest_email ILIKE $1 OR b.status ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count bookings", err)
	}

	rows, err := r.db.Query(ctx, bookingViewQuery+`
	WHERE $1 = '%%' OR b.guest_name ILIKE $1 OR b.guest_email ILIKE $1 OR b.status ILIKE $1
	ORDER BY b.created_at DESC, b.id DESC
	LIMIT $2 OFFSET $3`,
		pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bookings page", err)
	}
	views, err := collectBookingViews(rows)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewQuery+`
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC, b.id DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user bookings", err)
	}
	return collectBookingViews(rows)
}

// CountConfirmedOverlapping is the read-side availability count. A nil stay
// counts every confirmed booking for the package.
func (r *BookingReadStore) CountConfirmedOverlapping(ctx context.Context, packageID uuid.UUID, stay *booking.StayRange) (int, error) {
	sql := `SELECT COUNT(*) FROM bookings WHERE package_id = $1 AND status = 'confirmed'`
	args := []any{packageID}
	if stay != nil {
		sql += ` AND check_in_date < $2 AND check_out_date > $3`
		args = append(args, pgconv.DateToPgtype(stay.CheckOut()), pgconv.DateToPgtype(stay.CheckIn()))
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed bookings", err)
	}
	return count, nil
}

func (r *BookingReadStore) ConfirmedStays(ctx context.Context, packageID uuid.UUID) ([]booking.StayRange, error) {
	rows, err := r.db.Query(ctx,
		`SELECT check_in_date, check_out_date FROM bookings
		 WHERE package_id = $1 AND status = 'confirmed'`,
		packageID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed stays", err)
	}

	type datePair struct {
		CheckIn  pgtype.Date
		CheckOut pgtype.Date
	}
	pairs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[datePair])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan confirmed stays", err)
	}

	stays := make([]booking.StayRange, 0, len(pairs))
	for _, p := range pairs {
		stay, rangeErr := booking.NewStayRange(pgconv.TimeFromDate(p.CheckIn), pgconv.TimeFromDate(p.CheckOut))
		if rangeErr != nil {
			return nil, infra.WrapRepoErr("stored booking has an invalid stay range", rangeErr)
		}
		stays = append(stays, stay)
	}
	return stays, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	raw, err := pgx.CollectRows(rows, pgx.RowToStructByPos[bookingViewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking rows", err)
	}
	views := make([]*queries.BookingView, 0, len(raw))
	for _, row := range raw {
		view, convErr := toBookingView(row)
		if convErr != nil {
			return nil, convErr
		}
		views = append(views, view)
	}
	return views, nil
}

func toBookingView(row bookingViewRow) (*queries.BookingView, error) {
	amount, err := pgconv.Float64FromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking amount", err)
	}
	return &queries.BookingView{
		ID:           row.ID,
		PackageID:    row.PackageID,
		PackageName:  row.PackageName,
		UserID:       row.UserID,
		CheckInDate:  pgconv.TimeFromDate(row.CheckInDate),
		CheckOutDate: pgconv.TimeFromDate(row.CheckOutDate),
		GuestName:    row.GuestName,
		GuestEmail:   row.GuestEmail,
		GuestPhone:   row.GuestPhone,
		TotalAmount:  amount,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
