package response

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	PackageID    uuid.UUID `json:"package_id"`
	PackageName  string    `json:"package_name"`
	UserID       uuid.UUID `json:"user_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestPhone   string    `json:"guest_phone"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingPageResponse struct {
	Bookings    []*BookingResponse `json:"bookings"`
	TotalPages  int                `json:"total_pages"`
	CurrentPage int                `json:"current_page"`
	Total       int                `json:"total"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.CheckInDate = v.CheckInDate.Format(dateLayout)
	resp.CheckOutDate = v.CheckOutDate.Format(dateLayout)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

func FromBookingPage(p *queries.BookingPage) *BookingPageResponse {
	return &BookingPageResponse{
		Bookings:    FromBookingViews(p.Bookings),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Total:       p.Total,
	}
}
