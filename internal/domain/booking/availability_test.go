//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestAvailableRooms(t *testing.T) {
	assert.Equal(t, 7, booking.AvailableRooms(10, 3))
	assert.Equal(t, 0, booking.AvailableRooms(5, 5))
	assert.Equal(t, -1, booking.AvailableRooms(5, 6), "overbooked inventory goes negative")
}

func TestFullyBookedDates(t *testing.T) {
	t.Run("day is full only when coverage reaches total rooms", func(t *testing.T) {
		stays := []booking.StayRange{
			mustStay(t, date(2026, 9, 10), date(2026, 9, 12)),
			mustStay(t, date(2026, 9, 11), date(2026, 9, 13)),
		}

		full := booking.FullyBookedDates(stays, 2)
		assert.Equal(t, []string{"2026-09-11", "2026-09-12"}, full)
	})

	t.Run("partially booked days are not reported", func(t *testing.T) {
		stays := []booking.StayRange{
			mustStay(t, date(2026, 9, 10), date(2026, 9, 12)),
		}

		assert.Empty(t, booking.FullyBookedDates(stays, 2))
	})

	t.Run("coverage past total rooms still counts as full", func(t *testing.T) {
		stays := []booking.StayRange{
			mustStay(t, date(2026, 9, 10), date(2026, 9, 11)),
			mustStay(t, date(2026, 9, 10), date(2026, 9, 11)),
			mustStay(t, date(2026, 9, 10), date(2026, 9, 11)),
		}

		full := booking.FullyBookedDates(stays, 2)
		assert.Contains(t, full, "2026-09-10")
	})

	t.Run("result is sorted and duplicate-free", func(t *testing.T) {
		stays := []booking.StayRange{
			mustStay(t, date(2026, 9, 20), date(2026, 9, 21)),
			mustStay(t, date(2026, 9, 10), date(2026, 9, 11)),
		}

		full := booking.FullyBookedDates(stays, 1)
		assert.Equal(t, []string{"2026-09-10", "2026-09-11", "2026-09-20", "2026-09-21"}, full)
	})

	t.Run("no stays yields nothing", func(t *testing.T) {
		assert.Empty(t, booking.FullyBookedDates(nil, 3))
	})

	t.Run("non-positive inventory yields nothing", func(t *testing.T) {
		stays := []booking.StayRange{
			mustStay(t, date(2026, 9, 10), date(2026, 9, 11)),
		}

		assert.Empty(t, booking.FullyBookedDates(stays, 0))
	})
}
