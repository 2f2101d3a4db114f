//go:build unit || e2e

package builder

import (
	"time"

	"hotelhub/internal/domain/roomtype"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	ID          uuid.UUID
	Name        string
	TotalRooms  int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	now := time.Now()
	return &RoomTypeBuilder{
		ID:          uuid.New(),
		Name:        "Standard Double",
		TotalRooms:  10,
		Description: "Two double beds, garden view",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) BuildDomain() (*roomtype.RoomType, error) {
	return roomtype.NewRoomType(b.ID, b.Name, b.TotalRooms, b.Description)
}

func (b *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:          b.ID,
		Name:        b.Name,
		TotalRooms:  b.TotalRooms,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *RoomTypeBuilder) BuildCreateRequestDTO() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		Name:        b.Name,
		TotalRooms:  b.TotalRooms,
		Description: b.Description,
	}
}

func (b *RoomTypeBuilder) WithName(name string) *RoomTypeBuilder {
	b.Name = name
	return b
}

func (b *RoomTypeBuilder) WithTotalRooms(n int) *RoomTypeBuilder {
	b.TotalRooms = n
	return b
}
