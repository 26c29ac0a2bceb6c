package response

import (
	"roomcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int32           `json:"durationDays"`
	ProductLimit int32           `json:"productLimit"`
	Features     []string        `json:"features"`
}

func FromPlanViews(views []*queries.PlanView) []PlanResponse {
	plans := make([]PlanResponse, 0, len(views))
	for _, v := range views {
		plans = append(plans, PlanResponse{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Price:        v.Price,
			DurationDays: v.DurationDays,
			ProductLimit: v.ProductLimit,
			Features:     v.Features,
		})
	}
	return plans
}
