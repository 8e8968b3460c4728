package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCheckIn(r chi.Router, handler *adaptor.CheckInHandler) {
	r.Route("/api/checkins", func(r chi.Router) {
		// POST /api/checkins - Record a front-door entry
		r.Post("/", handler.Record)

		// GET /api/checkins - Attendance log
		r.Get("/", handler.List)
	})
}
