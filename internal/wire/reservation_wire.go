package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, handler *adaptor.ReservationHandler) {
	r.Route("/api/reservations", func(r chi.Router) {
		// POST /api/reservations - Book a seat in a class
		r.Post("/", handler.Book)

		// GET /api/reservations?class_id=N - Confirmed reservations
		r.Get("/", handler.ListConfirmed)

		// DELETE /api/reservations/{id} - Cancel a reservation
		r.Delete("/{id}", handler.Cancel)
	})
}
