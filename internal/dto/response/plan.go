package response

import (
	"gym-booking/internal/data/entity"
)

type PlanResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Description  string  `json:"description"`
	Active       bool    `json:"active"`
}

func PlanToResponse(plan *entity.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		Description:  plan.Description,
		Active:       plan.Active,
	}
}
