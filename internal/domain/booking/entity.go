package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrInvalidGuestEmail = errors.New("invalid guest email")
	ErrEmptyGuestPhone   = errors.New("guest phone cannot be empty")
	ErrNegativeAmount    = errors.New("total amount cannot be negative")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAlreadyConfirmed  = errors.New("booking is already confirmed")
	ErrBookingCancelled  = errors.New("booking is cancelled")
)

// Booking is one guest's reservation of a single room unit of a package.
// Created as pending; flips to confirmed after payment. Status transitions
// are last-write-wins for admin edits, except confirmation which goes
// through the capacity re-check in the command layer.
type Booking struct {
	id          uuid.UUID
	packageID   uuid.UUID
	userID      uuid.UUID
	stay        StayRange
	guestName   string
	guestEmail  string
	guestPhone  string
	totalAmount float64
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	packageID, userID uuid.UUID,
	stay StayRange,
	guestName, guestEmail, guestPhone string,
	totalAmount float64,
) (*Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	if _, err := mail.ParseAddress(guestEmail); err != nil {
		return nil, ErrInvalidGuestEmail
	}
	if strings.TrimSpace(guestPhone) == "" {
		return nil, ErrEmptyGuestPhone
	}
	if totalAmount < 0 {
		return nil, ErrNegativeAmount
	}

	return &Booking{
		id:          uuid.New(),
		packageID:   packageID,
		userID:      userID,
		stay:        stay,
		guestName:   guestName,
		guestEmail:  guestEmail,
		guestPhone:  strings.TrimSpace(guestPhone),
		totalAmount: totalAmount,
		status:      StatusPending,
	}, nil
}

func ReconstructBooking(
	id, packageID, userID uuid.UUID,
	stay StayRange,
	guestName, guestEmail, guestPhone string,
	totalAmount float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		packageID:   packageID,
		userID:      userID,
		stay:        stay,
		guestName:   guestName,
		guestEmail:  guestEmail,
		guestPhone:  guestPhone,
		totalAmount: totalAmount,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm transitions pending -> confirmed. Confirming an already-confirmed
// booking is rejected so the caller's capacity re-check is not bypassed.
func (b *Booking) Confirm() error {
	switch b.status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusCancelled:
		return ErrBookingCancelled
	default:
		b.status = StatusConfirmed
		return nil
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) PackageID() uuid.UUID { return b.packageID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) GuestName() string    { return b.guestName }
func (b *Booking) GuestEmail() string   { return b.guestEmail }
func (b *Booking) GuestPhone() string   { return b.guestPhone }
func (b *Booking) TotalAmount() float64 { return b.totalAmount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
