//go:build unit

package booking_test

import (
	"testing"

	"hotelhub/internal/domain/booking"
	"hotelhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, "Jamie Rivera", actual.GuestName())
		assert.False(t, actual.IsConfirmed())
	})

	t.Run("guest detail validation", func(t *testing.T) {
		runBookingCases(t, []bookingCase{
			{
				name:   "empty guest name",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestName("   ") },
				errIs:  booking.ErrEmptyGuestName,
			},
			{
				name:   "invalid guest email",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestEmail("not-an-email") },
				errIs:  booking.ErrInvalidGuestEmail,
			},
			{
				name:   "empty guest phone",
				mutate: func(b *builder.BookingBuilder) { b.WithGuestPhone("") },
				errIs:  booking.ErrEmptyGuestPhone,
			},
			{
				name:   "negative total amount",
				mutate: func(b *builder.BookingBuilder) { b.WithTotalAmount(-1) },
				errIs:  booking.ErrNegativeAmount,
			},
			{
				name:   "zero total amount is allowed",
				mutate: func(b *builder.BookingBuilder) { b.WithTotalAmount(0) },
			},
		})
	})

	t.Run("guest name is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithGuestName("  Jamie Rivera  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Jamie Rivera", actual.GuestName())
	})
}

func TestBookingConfirm(t *testing.T) {
	t.Run("pending booking confirms", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm())
		assert.True(t, b.IsConfirmed())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("confirming twice is rejected", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Confirm())
		require.ErrorIs(t, b.Confirm(), booking.ErrAlreadyConfirmed)
	})

	t.Run("cancelled booking cannot confirm", func(t *testing.T) {
		built := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled)
		stay, err := booking.NewStayRange(built.CheckInDate, built.CheckOutDate)
		require.NoError(t, err)

		b := booking.ReconstructBooking(
			built.ID, built.PackageID, built.UserID, stay,
			built.GuestName, built.GuestEmail, built.GuestPhone,
			built.TotalAmount, booking.StatusCancelled,
			built.CreatedAt, built.UpdatedAt,
		)

		require.ErrorIs(t, b.Confirm(), booking.ErrBookingCancelled)
	})
}

func TestStatusCountsAgainstCapacity(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.CountsAgainstCapacity())
	assert.False(t, booking.StatusPending.CountsAgainstCapacity())
	assert.False(t, booking.StatusCancelled.CountsAgainstCapacity())
}

func runBookingCases(t *testing.T, cases []bookingCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
