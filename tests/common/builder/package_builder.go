//go:build unit || e2e

package builder

import (
	"time"

	"hotelhub/internal/domain/roompackage"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type PackageBuilder struct {
	ID         uuid.UUID
	Code       string
	Name       string
	RoomTypeID uuid.UUID
	TotalRooms int
	BasePrice  float64
	Capacity   int
	Features   []string
	ImageURL   *string
	StartDate  time.Time
	EndDate    time.Time
	Now        time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewPackageBuilder() *PackageBuilder {
	now := time.Now()
	return &PackageBuilder{
		ID:         uuid.New(),
		Code:       "PKG-001",
		Name:       "Deluxe Ocean View",
		RoomTypeID: uuid.New(),
		TotalRooms: 10,
		BasePrice:  200,
		Capacity:   2,
		Features:   []string{"wifi", "breakfast"},
		StartDate:  now.AddDate(0, 0, 1),
		EndDate:    now.AddDate(0, 3, 0),
		Now:        now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildDomain() (*roompackage.RoomPackage, error) {
	return roompackage.NewRoomPackage(
		b.Name, b.RoomTypeID, b.BasePrice, b.Capacity,
		b.Features, b.ImageURL, b.StartDate, b.EndDate, b.Now,
	)
}

func (b *PackageBuilder) BuildRow() *queries.PackageRow {
	totalRooms := b.TotalRooms
	return &queries.PackageRow{
		ID:           b.ID,
		Code:         b.Code,
		Name:         b.Name,
		RoomTypeID:   b.RoomTypeID,
		RoomTypeName: "Standard Double",
		TotalRooms:   &totalRooms,
		BasePrice:    b.BasePrice,
		Capacity:     b.Capacity,
		Features:     b.Features,
		ImageURL:     b.ImageURL,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BuildMalformedRow mimics a package whose room type row is missing, the
// shape the read store hands up for dangling references.
func (b *PackageBuilder) BuildMalformedRow() *queries.PackageRow {
	row := b.BuildRow()
	row.RoomTypeName = ""
	row.TotalRooms = nil
	return row
}

func (b *PackageBuilder) BuildView() *queries.PackageView {
	return &queries.PackageView{
		ID:              b.ID,
		Code:            b.Code,
		Name:            b.Name,
		RoomTypeID:      b.RoomTypeID,
		RoomTypeName:    "Standard Double",
		TotalRooms:      b.TotalRooms,
		BasePrice:       b.BasePrice,
		Capacity:        b.Capacity,
		Features:        b.Features,
		ImageURL:        b.ImageURL,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		AvailableRooms:  b.TotalRooms,
		DiscountedPrice: b.BasePrice,
		DiscountApplied: false,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *PackageBuilder) BuildCreateRequestDTO() reqdto.CreatePackageRequest {
	return reqdto.CreatePackageRequest{
		Name:       b.Name,
		RoomTypeID: b.RoomTypeID,
		BasePrice:  b.BasePrice,
		Capacity:   b.Capacity,
		Features:   b.Features,
		ImageURL:   b.ImageURL,
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
	}
}

func (b *PackageBuilder) BuildCreateParams() commands.CreatePackageParams {
	return commands.CreatePackageParams{
		Name:       b.Name,
		RoomTypeID: b.RoomTypeID,
		BasePrice:  b.BasePrice,
		Capacity:   b.Capacity,
		Features:   b.Features,
		ImageURL:   b.ImageURL,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

func (b *PackageBuilder) WithName(name string) *PackageBuilder {
	b.Name = name
	return b
}

func (b *PackageBuilder) WithRoomTypeID(id uuid.UUID) *PackageBuilder {
	b.RoomTypeID = id
	return b
}

func (b *PackageBuilder) WithTotalRooms(n int) *PackageBuilder {
	b.TotalRooms = n
	return b
}

func (b *PackageBuilder) WithBasePrice(price float64) *PackageBuilder {
	b.BasePrice = price
	return b
}

func (b *PackageBuilder) WithCapacity(capacity int) *PackageBuilder {
	b.Capacity = capacity
	return b
}

func (b *PackageBuilder) WithWindow(start, end time.Time) *PackageBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PackageBuilder) WithNow(now time.Time) *PackageBuilder {
	b.Now = now
	return b
}
