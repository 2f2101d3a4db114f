package response

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalRooms  int       `json:"total_rooms"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, len(views))
	for i, v := range views {
		res[i] = FromRoomTypeView(v)
	}
	return res
}
