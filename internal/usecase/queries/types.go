package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// PackageView is a package annotated with computed availability and
// pricing. AvailableRooms and DiscountedPrice are derived on every read,
// never persisted.
type PackageView struct {
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
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	AvailableRooms  int       `json:"available_rooms"`
	DiscountedPrice float64   `json:"discounted_price"`
	DiscountApplied bool      `json:"discount_applied"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PackageRow is the raw joined row handed up by the read store. TotalRooms
// is nil when the referenced room type is missing or malformed; the
// resolver drops such packages from listings instead of failing them.
type PackageRow struct {
	ID           uuid.UUID
	Code         string
	Name         string
	RoomTypeID   uuid.UUID
	RoomTypeName string
	TotalRooms   *int
	BasePrice    float64
	Capacity     int
	Features     []string
	ImageURL     *string
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoomTypeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalRooms  int       `json:"total_rooms"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DiscountView struct {
	ID                 uuid.UUID   `json:"id"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Kind               string      `json:"type"`
	Value              float64     `json:"value"`
	ApplicablePackages []uuid.UUID `json:"applicable_packages"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	PackageID    uuid.UUID `json:"package_id"`
	PackageName  string    `json:"package_name"`
	UserID       uuid.UUID `json:"user_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestPhone   string    `json:"guest_phone"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingPage struct {
	Bookings    []*BookingView `json:"bookings"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	Total       int            `json:"total"`
}

type FeedbackView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PackageID   uuid.UUID `json:"package_id"`
	PackageName string    `json:"package_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// PackageFilter narrows the package listing. CheckIn/CheckOut form the
// candidate stay range (both present or both absent); the discount window
// pair restricts packages to those whose offer window overlaps it.
type PackageFilter struct {
	CheckIn             *time.Time
	CheckOut            *time.Time
	DiscountWindowStart *time.Time
	DiscountWindowEnd   *time.Time
}

// BookingFilter drives the admin booking list: page is 1-based, search
// matches guest name, guest email, or status, case-insensitive.
type BookingFilter struct {
	Page   int
	Limit  int
	Search string
}
