package discount

import (
	"errors"
	"strings"
	"time"

	"hotelhub/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("discount name cannot be empty")
	ErrInvalidKind       = errors.New("discount type must be percentage or fixed")
	ErrInvalidPercentage = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidFixedValue = errors.New("fixed discount must be positive")
	ErrFixedExceedsPrice = errors.New("fixed discount cannot exceed the minimum applicable package price")
	ErrEndDateInPast     = errors.New("end date must be today or in the future")
	ErrEndBeforeStart    = errors.New("end date must be after start date")
	ErrWindowMismatch    = errors.New("discount window does not overlap an applicable package's window")
)

// CodePrefix is the human-readable sequence prefix for discounts.
const CodePrefix = "DIS"

// Discount is a time-boxed price modifier. An empty applicablePackages set
// means the discount is global (applies to every package, including ones
// created after it). The window is inclusive calendar days: startDate is
// normalized to start-of-day, endDate to end-of-day.
type Discount struct {
	id                 uuid.UUID
	code               string // DIS-NNN, assigned by the repository under a row lock
	name               string
	description        string
	kind               Kind
	value              float64
	applicablePackages []uuid.UUID
	startDate          time.Time
	endDate            time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewDiscount validates everything that does not require storage lookups.
// Fixed-value-vs-minimum-price and set-uniqueness checks need the package
// table and live in the command layer.
func NewDiscount(
	name, description string,
	kind Kind,
	value float64,
	applicablePackages []uuid.UUID,
	startDate, endDate time.Time,
	now time.Time,
) (*Discount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind == KindPercentage && (value <= 0 || value > 100) {
		return nil, ErrInvalidPercentage
	}
	if kind == KindFixed && value <= 0 {
		return nil, ErrInvalidFixedValue
	}

	start := clock.StartOfDay(startDate)
	end := clock.EndOfDay(endDate)
	if end.Before(now) {
		return nil, ErrEndDateInPast
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	return &Discount{
		id:                 uuid.New(),
		name:               name,
		description:        strings.TrimSpace(description),
		kind:               kind,
		value:              value,
		applicablePackages: applicablePackages,
		startDate:          start,
		endDate:            end,
	}, nil
}

func ReconstructDiscount(
	id uuid.UUID,
	code, name, description string,
	kind Kind,
	value float64,
	applicablePackages []uuid.UUID,
	startDate, endDate time.Time,
	createdAt, updatedAt time.Time,
) *Discount {
	return &Discount{
		id:                 id,
		code:               code,
		name:               name,
		description:        description,
		kind:               kind,
		value:              value,
		applicablePackages: applicablePackages,
		startDate:          startDate,
		endDate:            endDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// IsGlobal reports whether the discount applies to all packages.
func (d *Discount) IsGlobal() bool {
	return len(d.applicablePackages) == 0
}

// AppliesTo reports whether the discount covers the given package.
func (d *Discount) AppliesTo(packageID uuid.UUID) bool {
	if d.IsGlobal() {
		return true
	}
	for _, id := range d.applicablePackages {
		if id == packageID {
			return true
		}
	}
	return false
}

// IsActiveAt applies the closed-interval window test.
func (d *Discount) IsActiveAt(t time.Time) bool {
	return !t.Before(d.startDate) && !t.After(d.endDate)
}

// Apply computes the discounted nightly price. No floor is applied: the
// write path guarantees a fixed value never exceeds the minimum base price
// of the packages it targets, and this read path trusts that guarantee.
func (d *Discount) Apply(basePrice float64) float64 {
	if d.kind == KindPercentage {
		return basePrice * (1 - d.value/100)
	}
	return basePrice - d.value
}

// SameApplicableSet reports whether both discounts target the identical
// package set, order-independent. Two global discounts always match.
func (d *Discount) SameApplicableSet(other *Discount) bool {
	if len(d.applicablePackages) != len(other.applicablePackages) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(d.applicablePackages))
	for _, id := range d.applicablePackages {
		set[id] = struct{}{}
	}
	for _, id := range other.applicablePackages {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

// WindowOverlaps applies the closed-interval overlap test against another
// discount's window.
func (d *Discount) WindowOverlaps(other *Discount) bool {
	return !d.startDate.After(other.endDate) && !d.endDate.Before(other.startDate)
}

func (d *Discount) ID() uuid.UUID                   { return d.id }
func (d *Discount) Code() string                    { return d.code }
func (d *Discount) Name() string                    { return d.name }
func (d *Discount) Description() string             { return d.description }
func (d *Discount) Kind() Kind                      { return d.kind }
func (d *Discount) Value() float64                  { return d.value }
func (d *Discount) ApplicablePackages() []uuid.UUID { return d.applicablePackages }
func (d *Discount) StartDate() time.Time            { return d.startDate }
func (d *Discount) EndDate() time.Time              { return d.endDate }
func (d *Discount) CreatedAt() time.Time            { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time            { return d.updatedAt }
