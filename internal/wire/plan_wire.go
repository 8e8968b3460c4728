package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePlan(r chi.Router, handler *adaptor.PlanHandler) {
	r.Route("/api/plans", func(r chi.Router) {
		// GET /api/plans - List membership plans
		r.Get("/", handler.List)

		// GET /api/plans/{id} - Plan details
		r.Get("/{id}", handler.GetByID)
	})
}
