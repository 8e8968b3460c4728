package adaptor

import (
	"net/http"

	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotifierService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotifierService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// Upcoming handles GET /api/notifications/upcoming?days=3
func (h *NotificationHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days := utils.ParseInt(r.URL.Query().Get("days"), h.service.DefaultHorizon())

	upcoming, err := h.service.Upcoming(r.Context(), days)
	if err != nil {
		respondServiceError(w, h.log, err, "list upcoming expirations")
		return
	}

	utils.ResponseSuccess(w, "success", upcoming)
}

// Lapsed handles GET /api/notifications/lapsed
func (h *NotificationHandler) Lapsed(w http.ResponseWriter, r *http.Request) {
	lapsed, err := h.service.Lapsed(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list lapsed members")
		return
	}

	utils.ResponseSuccess(w, "success", lapsed)
}

// SendReminder handles POST /api/notifications/reminders/{member_id}
func (h *NotificationHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "member_id")
	if memberID == "" {
		utils.ResponseBadRequest(w, "Member ID is required", nil)
		return
	}

	result, err := h.service.SendReminder(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, h.log, err, "send reminder")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
