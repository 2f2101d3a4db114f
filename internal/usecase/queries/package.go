package queries

import (
	"context"
	"log/slog"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/discount"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPackageNotFound  = errs.New("package not found")
	ErrPackageMalformed = errs.New("package references a missing or invalid room type")
)

type PackageReadStore interface {
	List(ctx context.Context, filter PackageFilter) ([]*PackageRow, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PackageRow, error)
}

type BookingCountStore interface {
	// CountConfirmedOverlapping counts confirmed bookings for the package.
	// A nil stay counts every confirmed booking regardless of date; a
	// non-nil stay restricts the count with the half-open overlap test.
	CountConfirmedOverlapping(ctx context.Context, packageID uuid.UUID, stay *booking.StayRange) (int, error)
	// ConfirmedStays returns the stay ranges of all confirmed bookings.
	ConfirmedStays(ctx context.Context, packageID uuid.UUID) ([]booking.StayRange, error)
}

type PackageQueries interface {
	ListAvailablePackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
	GetFullyBookedDates(ctx context.Context, packageID uuid.UUID) ([]string, error)
}

type packageQueriesImpl struct {
	packages  PackageReadStore
	bookings  BookingCountStore
	discounts DiscountReadStore
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPackageQueries(
	packages PackageReadStore,
	bookings BookingCountStore,
	discounts DiscountReadStore,
	clk clock.Clock,
	logger *slog.Logger,
) PackageQueries {
	return &packageQueriesImpl{
		packages:  packages,
		bookings:  bookings,
		discounts: discounts,
		clock:     clk,
		logger:    logger,
	}
}

// ListAvailablePackages annotates every listed package with remaining
// availability and the effective nightly price. Packages whose room type is
// missing or has no inventory are dropped from the result, and packages
// with no free unit for the candidate range are dropped as well.
func (q *packageQueriesImpl) ListAvailablePackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error) {
	rows, err := q.packages.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	active, err := q.discounts.ActiveAt(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	var stay *booking.StayRange
	if filter.CheckIn != nil && filter.CheckOut != nil {
		s, rangeErr := booking.NewStayRange(*filter.CheckIn, *filter.CheckOut)
		if rangeErr != nil {
			return nil, errs.Mark(rangeErr, ErrInvalidDateRange)
		}
		stay = &s
	}

	views := make([]*PackageView, 0, len(rows))
	for _, row := range rows {
		view, resolveErr := q.resolve(ctx, row, stay)
		if resolveErr != nil {
			return nil, resolveErr
		}
		if view == nil {
			continue
		}
		if stay != nil && view.AvailableRooms <= 0 {
			continue
		}
		view.applyPricing(discount.ResolveEffectivePrice(row.ID, row.BasePrice, active))
		views = append(views, view)
	}

	return views, nil
}

func (q *packageQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	row, err := q.packages.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	view, err := q.resolve(ctx, row, nil)
	if err != nil {
		return nil, err
	}
	if view == nil {
		// A single lookup surfaces the malformed reference instead of
		// silently skipping the way the listing does.
		return nil, ErrPackageMalformed
	}

	active, err := q.discounts.ActiveAt(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	view.applyPricing(discount.ResolveEffectivePrice(row.ID, row.BasePrice, active))

	return view, nil
}

// GetFullyBookedDates reports the calendar days with zero remaining
// capacity, for the booking UI's date picker. A day is full only once the
// confirmed bookings covering it reach the room type's total inventory.
func (q *packageQueriesImpl) GetFullyBookedDates(ctx context.Context, packageID uuid.UUID) ([]string, error) {
	row, err := q.packages.FindByID(ctx, packageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	if row.TotalRooms == nil || *row.TotalRooms < 1 {
		return nil, ErrPackageMalformed
	}

	stays, err := q.bookings.ConfirmedStays(ctx, packageID)
	if err != nil {
		return nil, err
	}

	return booking.FullyBookedDates(stays, *row.TotalRooms), nil
}

// resolve computes availability for one row. Returns (nil, nil) when the
// package must be excluded because of a malformed room type reference.
func (q *packageQueriesImpl) resolve(ctx context.Context, row *PackageRow, stay *booking.StayRange) (*PackageView, error) {
	if row.TotalRooms == nil || *row.TotalRooms < 1 {
		q.logger.Warn("excluding package with invalid room type",
			"package_id", row.ID, "package_code", row.Code)
		return nil, nil
	}

	count, err := q.bookings.CountConfirmedOverlapping(ctx, row.ID, stay)
	if err != nil {
		return nil, err
	}

	return &PackageView{
		ID:             row.ID,
		Code:           row.Code,
		Name:           row.Name,
		RoomTypeID:     row.RoomTypeID,
		RoomTypeName:   row.RoomTypeName,
		TotalRooms:     *row.TotalRooms,
		BasePrice:      row.BasePrice,
		Capacity:       row.Capacity,
		Features:       row.Features,
		ImageURL:       row.ImageURL,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		AvailableRooms: booking.AvailableRooms(*row.TotalRooms, count),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func (v *PackageView) applyPricing(p discount.EffectivePrice) {
	v.BasePrice = p.BasePrice
	v.DiscountedPrice = p.DiscountedPrice
	v.DiscountApplied = p.DiscountApplied
}
