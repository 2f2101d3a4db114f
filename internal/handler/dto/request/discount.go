package request

import (
	"time"

	"hotelhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateDiscountRequest struct {
	Name               string      `json:"name" binding:"required"`
	Description        string      `json:"description"`
	Kind               string      `json:"type" binding:"required,oneof=percentage fixed"`
	Value              float64     `json:"value" binding:"required,gt=0"`
	ApplicablePackages []uuid.UUID `json:"applicable_packages"`
	StartDate          string      `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate            string      `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type UpdateDiscountRequest = CreateDiscountRequest

func (r *CreateDiscountRequest) ToParams() (commands.CreateDiscountParams, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateDiscountParams{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateDiscountParams{}, err
	}

	return commands.CreateDiscountParams{
		Name:               r.Name,
		Description:        r.Description,
		Kind:               r.Kind,
		Value:              r.Value,
		ApplicablePackages: r.ApplicablePackages,
		StartDate:          start,
		EndDate:            end,
	}, nil
}
