package request

import (
	"hotelhub/internal/usecase/commands"
)

type CreateRoomTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	TotalRooms  int    `json:"total_rooms" binding:"required,min=1"`
	Description string `json:"description"`
}

func (r *CreateRoomTypeRequest) ToParams() commands.CreateRoomTypeParams {
	return commands.CreateRoomTypeParams{
		Name:        r.Name,
		TotalRooms:  r.TotalRooms,
		Description: r.Description,
	}
}
