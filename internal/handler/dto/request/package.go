package request

import (
	"time"

	"hotelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreatePackageRequest struct {
	Name       string    `json:"name" binding:"required"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	BasePrice  float64   `json:"base_price" binding:"required,gte=0"`
	Capacity   int       `json:"capacity" binding:"required,min=1"`
	Features   []string  `json:"features"`
	ImageURL   *string   `json:"image_url,omitempty"`
	StartDate  string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string    `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type UpdatePackageRequest = CreatePackageRequest

func (r *CreatePackageRequest) ToParams() (commands.CreatePackageParams, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreatePackageParams{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreatePackageParams{}, err
	}

	features := r.Features
	if features == nil {
		features = []string{}
	}

	return commands.CreatePackageParams{
		Name:       r.Name,
		RoomTypeID: r.RoomTypeID,
		BasePrice:  r.BasePrice,
		Capacity:   r.Capacity,
		Features:   features,
		ImageURL:   r.ImageURL,
		StartDate:  start,
		EndDate:    end,
	}, nil
}
