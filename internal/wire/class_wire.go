package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireClass(r chi.Router, handler *adaptor.ClassHandler) {
	r.Route("/api/classes", func(r chi.Router) {
		// POST /api/classes - Create a class
		r.Post("/", handler.Create)

		// GET /api/classes - List classes (?occupancy=true adds seat usage)
		r.Get("/", handler.List)

		// GET /api/classes/{id} - Class details
		r.Get("/{id}", handler.GetByID)
	})
}
