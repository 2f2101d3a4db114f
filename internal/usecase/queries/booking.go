package queries

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

const defaultBookingPageSize = 10

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindPage returns one page of bookings plus the total row count for
	// the same search.
	FindPage(ctx context.Context, search string, limit, offset int32) ([]*BookingView, int, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, filter BookingFilter) (*BookingPage, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) (*BookingPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBookingPageSize
	}

	offset := (page - 1) * limit
	rows, total, err := q.bookings.FindPage(ctx, filter.Search, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return &BookingPage{
		Bookings:    rows,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.bookings.FindByUserID(ctx, userID)
}
