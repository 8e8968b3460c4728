package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMember(r chi.Router, handler *adaptor.MemberHandler) {
	r.Route("/api/members", func(r chi.Router) {
		// POST /api/members - Register a new member
		r.Post("/", handler.Register)

		// GET /api/members - List all members
		r.Get("/", handler.List)

		// GET /api/members/{id} - Member details
		r.Get("/{id}", handler.GetByID)
	})
}
