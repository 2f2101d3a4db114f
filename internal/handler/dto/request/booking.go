package request

import (
	"time"

	"hotelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveBookingRequest struct {
	PackageID    uuid.UUID `json:"package_id" binding:"required"`
	CheckInDate  string    `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string    `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	GuestName    string    `json:"guest_name" binding:"required"`
	GuestEmail   string    `json:"guest_email" binding:"required,email"`
	GuestPhone   string    `json:"guest_phone" binding:"required"`
	TotalAmount  float64   `json:"total_amount" binding:"required,gte=0"`
}

func (r *ReserveBookingRequest) ToParams(userID uuid.UUID) (commands.ReserveBookingParams, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckInDate)
	if err != nil {
		return commands.ReserveBookingParams{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOutDate)
	if err != nil {
		return commands.ReserveBookingParams{}, err
	}

	return commands.ReserveBookingParams{
		PackageID:    r.PackageID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		TotalAmount:  r.TotalAmount,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type UpdateGuestDetailsRequest struct {
	GuestName  *string `json:"guest_name,omitempty"`
	GuestEmail *string `json:"guest_email,omitempty" binding:"omitempty,email"`
	GuestPhone *string `json:"guest_phone,omitempty"`
}

func (r *UpdateGuestDetailsRequest) ToParams() commands.UpdateGuestDetailsParams {
	return commands.UpdateGuestDetailsParams{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
	}
}
