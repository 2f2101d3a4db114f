package roompackage

import (
	"errors"
	"strings"
	"time"

	"hotelhub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("package name cannot be empty")
	ErrNegativePrice   = errors.New("base price cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrStartDateInPast = errors.New("start date must be today or in the future")
	ErrEndBeforeStart  = errors.New("end date must be after start date")
	ErrMissingRoomType = errors.New("package must reference a room type")
)

// CodePrefix is the human-readable sequence prefix for packages.
const CodePrefix = "PKG"

// RoomPackage is a sellable offering (nightly price, capacity, features)
// tied to one RoomType for a bookable window. Availability and discounted
// price are computed on read, never stored here.
type RoomPackage struct {
	id         uuid.UUID
	code       string // PKG-NNN, assigned by the repository under a row lock
	name       string
	roomTypeID uuid.UUID
	basePrice  float64
	capacity   int
	features   []string
	imageURL   *string
	startDate  time.Time
	endDate    time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRoomPackage validates a package about to be offered. The code is left
// empty; the write side assigns it when the row is inserted.
func NewRoomPackage(
	name string,
	roomTypeID uuid.UUID,
	basePrice float64,
	capacity int,
	features []string,
	imageURL *string,
	startDate, endDate time.Time,
	now time.Time,
) (*RoomPackage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if roomTypeID == uuid.Nil {
		return nil, ErrMissingRoomType
	}
	if basePrice < 0 {
		return nil, ErrNegativePrice
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if startDate.Before(clock.StartOfDay(now)) {
		return nil, ErrStartDateInPast
	}
	if !endDate.After(startDate) {
		return nil, ErrEndBeforeStart
	}

	return &RoomPackage{
		id:         uuid.New(),
		name:       name,
		roomTypeID: roomTypeID,
		basePrice:  basePrice,
		capacity:   capacity,
		features:   features,
		imageURL:   imageURL,
		startDate:  startDate,
		endDate:    endDate,
	}, nil
}

func ReconstructRoomPackage(
	id uuid.UUID,
	code, name string,
	roomTypeID uuid.UUID,
	basePrice float64,
	capacity int,
	features []string,
	imageURL *string,
	startDate, endDate time.Time,
	createdAt, updatedAt time.Time,
) *RoomPackage {
	return &RoomPackage{
		id:         id,
		code:       code,
		name:       name,
		roomTypeID: roomTypeID,
		basePrice:  basePrice,
		capacity:   capacity,
		features:   features,
		imageURL:   imageURL,
		startDate:  startDate,
		endDate:    endDate,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// OverlapsWindow reports whether the package's offer window overlaps the
// closed interval [from, to]. Promotional windows are inclusive calendar
// days, so the comparison is closed on both ends.
func (p *RoomPackage) OverlapsWindow(from, to time.Time) bool {
	return !p.startDate.After(to) && !p.endDate.Before(from)
}

func (p *RoomPackage) ID() uuid.UUID         { return p.id }
func (p *RoomPackage) Code() string          { return p.code }
func (p *RoomPackage) Name() string          { return p.name }
func (p *RoomPackage) RoomTypeID() uuid.UUID { return p.roomTypeID }
func (p *RoomPackage) BasePrice() float64    { return p.basePrice }
func (p *RoomPackage) Capacity() int         { return p.capacity }
func (p *RoomPackage) Features() []string    { return p.features }
func (p *RoomPackage) ImageURL() *string     { return p.imageURL }
func (p *RoomPackage) StartDate() time.Time  { return p.startDate }
func (p *RoomPackage) EndDate() time.Time    { return p.endDate }
func (p *RoomPackage) CreatedAt() time.Time  { return p.createdAt }
func (p *RoomPackage) UpdatedAt() time.Time  { return p.updatedAt }
