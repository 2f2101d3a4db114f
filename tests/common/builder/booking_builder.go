//go:build unit || e2e

package builder

import (
	"time"

	"hotelhub/internal/domain/booking"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	PackageID    uuid.UUID
	UserID       uuid.UUID
	CheckInDate  time.Time
	CheckOutDate time.Time
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	TotalAmount  float64
	Status       booking.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := now.AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return &BookingBuilder{
		ID:           uuid.New(),
		PackageID:    uuid.New(),
		UserID:       uuid.New(),
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 3),
		GuestName:    "Jamie Rivera",
		GuestEmail:   "jamie@example.com",
		GuestPhone:   "+1-555-0100",
		TotalAmount:  600,
		Status:       booking.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayRange(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.PackageID, b.UserID, stay, b.GuestName, b.GuestEmail, b.GuestPhone, b.TotalAmount)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		PackageID:    b.PackageID,
		PackageName:  "Deluxe Ocean View",
		UserID:       b.UserID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildReserveRequestDTO() reqdto.ReserveBookingRequest {
	return reqdto.ReserveBookingRequest{
		PackageID:    b.PackageID,
		CheckInDate:  b.CheckInDate.Format(time.DateOnly),
		CheckOutDate: b.CheckOutDate.Format(time.DateOnly),
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		TotalAmount:  b.TotalAmount,
	}
}

func (b *BookingBuilder) BuildReserveParams() commands.ReserveBookingParams {
	return commands.ReserveBookingParams{
		PackageID:    b.PackageID,
		UserID:       b.UserID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		TotalAmount:  b.TotalAmount,
	}
}

func (b *BookingBuilder) WithPackageID(id uuid.UUID) *BookingBuilder {
	b.PackageID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithGuestPhone(phone string) *BookingBuilder {
	b.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithTotalAmount(amount float64) *BookingBuilder {
	b.TotalAmount = amount
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
