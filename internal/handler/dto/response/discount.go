package response

import (
	"time"

	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DiscountResponse struct {
	ID                 uuid.UUID   `json:"id"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Kind               string      `json:"type"`
	Value              float64     `json:"value"`
	ApplicablePackages []uuid.UUID `json:"applicable_packages"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func FromDiscountView(v *queries.DiscountView) *DiscountResponse {
	var resp DiscountResponse
	_ = copier.Copy(&resp, v)
	if resp.ApplicablePackages == nil {
		resp.ApplicablePackages = []uuid.UUID{}
	}
	return &resp
}

func FromDiscountViews(views []*queries.DiscountView) []*DiscountResponse {
	res := make([]*DiscountResponse, len(views))
	for i, v := range views {
		res[i] = FromDiscountView(v)
	}
	return res
}
