package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, handler *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		// POST /api/payments - Record a payment and renew the membership
		r.Post("/", handler.Record)

		// GET /api/payments - Payment history
		r.Get("/", handler.List)
	})
}
