package response

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type PackageResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	RoomTypeID      uuid.UUID `json:"room_type_id"`
	RoomTypeName    string    `json:"room_type_name"`
	TotalRooms      int       `json:"total_rooms"`
	BasePrice       float64   `json:"base_price"`
	Capacity        int       `json:"capacity"`
	Features        []string  `json:"features"`
	ImageURL        *string   `json:"image_url,omitempty"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	AvailableRooms  int       `json:"available_rooms"`
	DiscountedPrice float64   `json:"discounted_price"`
	DiscountApplied bool      `json:"discount_applied"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromPackageView(v *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, v)
	resp.StartDate = v.StartDate.Format(dateLayout)
	resp.EndDate = v.EndDate.Format(dateLayout)
	return &resp
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	res := make([]*PackageResponse, len(views))
	for i, v := range views {
		res[i] = FromPackageView(v)
	}
	return res
}

type FullyBookedDatesResponse struct {
	PackageID uuid.UUID `json:"package_id"`
	Dates     []string  `json:"fully_booked_dates"`
}
