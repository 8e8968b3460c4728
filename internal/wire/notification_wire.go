package wire

import (
	"gym-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotification(r chi.Router, handler *adaptor.NotificationHandler) {
	r.Route("/api/notifications", func(r chi.Router) {
		// GET /api/notifications/upcoming?days=3 - Expiring memberships
		r.Get("/upcoming", handler.Upcoming)

		// GET /api/notifications/lapsed - Already-expired memberships
		r.Get("/lapsed", handler.Lapsed)

		// POST /api/notifications/reminders/{member_id} - Deliver one reminder
		r.Post("/reminders/{member_id}", handler.SendReminder)
	})
}
