//go:build unit || e2e

package builder

import (
	"time"

	"hotelhub/internal/domain/discount"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	ID                 uuid.UUID
	Code               string
	Name               string
	Description        string
	Kind               discount.Kind
	Value              float64
	ApplicablePackages []uuid.UUID
	StartDate          time.Time
	EndDate            time.Time
	Now                time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewDiscountBuilder() *DiscountBuilder {
	now := time.Now()
	return &DiscountBuilder{
		ID:        uuid.New(),
		Code:      "DIS-001",
		Name:      "Summer Sale",
		Kind:      discount.KindPercentage,
		Value:     20,
		StartDate: now,
		EndDate:   now.AddDate(0, 1, 0),
		Now:       now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) BuildDomain() (*discount.Discount, error) {
	return discount.NewDiscount(
		b.Name, b.Description, b.Kind, b.Value,
		b.ApplicablePackages, b.StartDate, b.EndDate, b.Now,
	)
}

// BuildReconstructed returns a fully-populated entity for read-side tests
// that need a stable code and created-at ordering.
func (b *DiscountBuilder) BuildReconstructed() *discount.Discount {
	return discount.ReconstructDiscount(
		b.ID, b.Code, b.Name, b.Description, b.Kind, b.Value,
		b.ApplicablePackages, b.StartDate, b.EndDate, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *DiscountBuilder) BuildView() *queries.DiscountView {
	pkgs := b.ApplicablePackages
	if pkgs == nil {
		pkgs = []uuid.UUID{}
	}
	return &queries.DiscountView{
		ID:                 b.ID,
		Code:               b.Code,
		Name:               b.Name,
		Description:        b.Description,
		Kind:               b.Kind.String(),
		Value:              b.Value,
		ApplicablePackages: pkgs,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *DiscountBuilder) BuildCreateRequestDTO() reqdto.CreateDiscountRequest {
	return reqdto.CreateDiscountRequest{
		Name:               b.Name,
		Description:        b.Description,
		Kind:               b.Kind.String(),
		Value:              b.Value,
		ApplicablePackages: b.ApplicablePackages,
		StartDate:          b.StartDate.Format(time.DateOnly),
		EndDate:            b.EndDate.Format(time.DateOnly),
	}
}

func (b *DiscountBuilder) BuildCreateParams() commands.CreateDiscountParams {
	return commands.CreateDiscountParams{
		Name:               b.Name,
		Description:        b.Description,
		Kind:               b.Kind.String(),
		Value:              b.Value,
		ApplicablePackages: b.ApplicablePackages,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
	}
}

func (b *DiscountBuilder) WithName(name string) *DiscountBuilder {
	b.Name = name
	return b
}

func (b *DiscountBuilder) WithKind(kind discount.Kind) *DiscountBuilder {
	b.Kind = kind
	return b
}

func (b *DiscountBuilder) WithValue(value float64) *DiscountBuilder {
	b.Value = value
	return b
}

func (b *DiscountBuilder) WithApplicablePackages(ids ...uuid.UUID) *DiscountBuilder {
	b.ApplicablePackages = ids
	return b
}

func (b *DiscountBuilder) WithWindow(start, end time.Time) *DiscountBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *DiscountBuilder) WithCreatedAt(createdAt time.Time) *DiscountBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *DiscountBuilder) WithNow(now time.Time) *DiscountBuilder {
	b.Now = now
	return b
}

func (b *DiscountBuilder) AsFixed(value float64) *DiscountBuilder {
	b.Kind = discount.KindFixed
	b.Value = value
	return b
}
