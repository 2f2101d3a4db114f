//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/discount"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"
	"hotelhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory read stores. The pricing and availability logic lives entirely
// in the query layer, so plain fakes are enough here.

type fakePackageStore struct {
	rows []*queries.PackageRow
}

func (f *fakePackageStore) List(_ context.Context, _ queries.PackageFilter) ([]*queries.PackageRow, error) {
	return f.rows, nil
}

func (f *fakePackageStore) FindByID(_ context.Context, id uuid.UUID) (*queries.PackageRow, error) {
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, infra.WrapRepoErr("package not found", errors.New("no rows"), infra.KindNotFound)
}

type fakeBookingStore struct {
	counts map[uuid.UUID]int
	stays  map[uuid.UUID][]booking.StayRange
}

func (f *fakeBookingStore) CountConfirmedOverlapping(_ context.Context, packageID uuid.UUID, _ *booking.StayRange) (int, error) {
	return f.counts[packageID], nil
}

func (f *fakeBookingStore) ConfirmedStays(_ context.Context, packageID uuid.UUID) ([]booking.StayRange, error) {
	return f.stays[packageID], nil
}

type fakeDiscountStore struct {
	active []*discount.Discount
}

func (f *fakeDiscountStore) ListAll(_ context.Context) ([]*discount.Discount, error) {
	return f.active, nil
}

func (f *fakeDiscountStore) ActiveAt(_ context.Context, _ time.Time) ([]*discount.Discount, error) {
	return f.active, nil
}

func (f *fakeDiscountStore) FindByID(_ context.Context, id uuid.UUID) (*discount.Discount, error) {
	for _, d := range f.active {
		if d.ID() == id {
			return d, nil
		}
	}
	return nil, infra.WrapRepoErr("discount not found", errors.New("no rows"), infra.KindNotFound)
}

func newPackageQueries(pkgs *fakePackageStore, bookings *fakeBookingStore, discounts *fakeDiscountStore) queries.PackageQueries {
	if bookings.counts == nil {
		bookings.counts = map[uuid.UUID]int{}
	}
	if bookings.stays == nil {
		bookings.stays = map[uuid.UUID][]booking.StayRange{}
	}
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.DiscardHandler)
	return queries.NewPackageQueries(pkgs, bookings, discounts, clk, logger)
}

func TestListAvailablePackages(t *testing.T) {
	ctx := context.Background()

	t.Run("availability is total rooms minus confirmed count", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithTotalRooms(10).BuildRow()
		bookings := &fakeBookingStore{counts: map[uuid.UUID]int{row.ID: 3}}

		q := newPackageQueries(&fakePackageStore{rows: []*queries.PackageRow{row}}, bookings, &fakeDiscountStore{})

		views, err := q.ListAvailablePackages(ctx, queries.PackageFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 7, views[0].AvailableRooms)
	})

	t.Run("package with missing room type is dropped", func(t *testing.T) {
		good := builder.NewPackageBuilder().BuildRow()
		malformed := builder.NewPackageBuilder().BuildMalformedRow()

		q := newPackageQueries(
			&fakePackageStore{rows: []*queries.PackageRow{good, malformed}},
			&fakeBookingStore{},
			&fakeDiscountStore{},
		)

		views, err := q.ListAvailablePackages(ctx, queries.PackageFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, good.ID, views[0].ID)
	})

	t.Run("sold-out package is dropped only when a stay is requested", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithTotalRooms(2).BuildRow()
		bookings := &fakeBookingStore{counts: map[uuid.UUID]int{row.ID: 2}}
		store := &fakePackageStore{rows: []*queries.PackageRow{row}}

		q := newPackageQueries(store, bookings, &fakeDiscountStore{})

		views, err := q.ListAvailablePackages(ctx, queries.PackageFilter{})
		require.NoError(t, err)
		assert.Len(t, views, 1, "no stay filter keeps sold-out packages listed")
		assert.Equal(t, 0, views[0].AvailableRooms)

		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := checkIn.AddDate(0, 0, 3)
		views, err = q.ListAvailablePackages(ctx, queries.PackageFilter{CheckIn: &checkIn, CheckOut: &checkOut})
		require.NoError(t, err)
		assert.Empty(t, views, "stay filter drops packages with no free unit")
	})

	t.Run("invalid stay filter is rejected", func(t *testing.T) {
		q := newPackageQueries(&fakePackageStore{}, &fakeBookingStore{}, &fakeDiscountStore{})

		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		checkOut := checkIn.AddDate(0, 0, -1)
		_, err := q.ListAvailablePackages(ctx, queries.PackageFilter{CheckIn: &checkIn, CheckOut: &checkOut})
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrInvalidDateRange))
	})

	t.Run("active discount is applied to the listed price", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithBasePrice(100).BuildRow()
		d := builder.NewDiscountBuilder().WithValue(20).BuildReconstructed()

		q := newPackageQueries(
			&fakePackageStore{rows: []*queries.PackageRow{row}},
			&fakeBookingStore{},
			&fakeDiscountStore{active: []*discount.Discount{d}},
		)

		views, err := q.ListAvailablePackages(ctx, queries.PackageFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.InDelta(t, 80, views[0].DiscountedPrice, 0.0001)
		assert.True(t, views[0].DiscountApplied)
	})

	t.Run("no discount keeps identity price", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithBasePrice(150).BuildRow()

		q := newPackageQueries(&fakePackageStore{rows: []*queries.PackageRow{row}}, &fakeBookingStore{}, &fakeDiscountStore{})

		views, err := q.ListAvailablePackages(ctx, queries.PackageFilter{})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 150.0, views[0].DiscountedPrice)
		assert.False(t, views[0].DiscountApplied)
	})
}

func TestGetPackage(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		q := newPackageQueries(&fakePackageStore{}, &fakeBookingStore{}, &fakeDiscountStore{})

		_, err := q.GetPackage(ctx, uuid.New())
		require.ErrorIs(t, err, queries.ErrPackageNotFound)
	})

	t.Run("malformed room type reference surfaces an error", func(t *testing.T) {
		row := builder.NewPackageBuilder().BuildMalformedRow()

		q := newPackageQueries(&fakePackageStore{rows: []*queries.PackageRow{row}}, &fakeBookingStore{}, &fakeDiscountStore{})

		_, err := q.GetPackage(ctx, row.ID)
		require.ErrorIs(t, err, queries.ErrPackageMalformed)
	})

	t.Run("found package carries pricing", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithBasePrice(200).BuildRow()
		d := builder.NewDiscountBuilder().AsFixed(50).BuildReconstructed()

		q := newPackageQueries(
			&fakePackageStore{rows: []*queries.PackageRow{row}},
			&fakeBookingStore{},
			&fakeDiscountStore{active: []*discount.Discount{d}},
		)

		view, err := q.GetPackage(ctx, row.ID)
		require.NoError(t, err)
		assert.InDelta(t, 150, view.DiscountedPrice, 0.0001)
		assert.True(t, view.DiscountApplied)
	})
}

func TestGetFullyBookedDates(t *testing.T) {
	ctx := context.Background()

	t.Run("full days reported once inventory is reached", func(t *testing.T) {
		row := builder.NewPackageBuilder().WithTotalRooms(2).BuildRow()

		mk := func(inDay, outDay int) booking.StayRange {
			stay, err := booking.NewStayRange(
				time.Date(2026, 9, inDay, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 9, outDay, 0, 0, 0, 0, time.UTC),
			)
			require.NoError(t, err)
			return stay
		}

		bookings := &fakeBookingStore{stays: map[uuid.UUID][]booking.StayRange{
			row.ID: {mk(10, 12), mk(11, 13)},
		}}

		q := newPackageQueries(&fakePackageStore{rows: []*queries.PackageRow{row}}, bookings, &fakeDiscountStore{})

		dates, err := q.GetFullyBookedDates(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2026-09-11", "2026-09-12"}, dates)
	})

	t.Run("unknown package", func(t *testing.T) {
		q := newPackageQueries(&fakePackageStore{}, &fakeBookingStore{}, &fakeDiscountStore{})

		_, err := q.GetFullyBookedDates(ctx, uuid.New())
		require.ErrorIs(t, err, queries.ErrPackageNotFound)
	})

	t.Run("malformed package", func(t *testing.T) {
		row := builder.NewPackageBuilder().BuildMalformedRow()

		q := newPackageQueries(&fakePackageStore{rows: []*queries.PackageRow{row}}, &fakeBookingStore{}, &fakeDiscountStore{})

		_, err := q.GetFullyBookedDates(ctx, row.ID)
		require.ErrorIs(t, err, queries.ErrPackageMalformed)
	})
}
