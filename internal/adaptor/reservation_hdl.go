package adaptor

import (
	"encoding/json"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Book handles POST /api/reservations
func (h *ReservationHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req request.BookReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.Book(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "book reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// Cancel handles DELETE /api/reservations/{id}
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID); err != nil {
		respondServiceError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListConfirmed handles GET /api/reservations?class_id=N
func (h *ReservationHandler) ListConfirmed(w http.ResponseWriter, r *http.Request) {
	var classID *int64
	if raw := r.URL.Query().Get("class_id"); raw != "" {
		id, ok := utils.ParseInt64(raw)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid class_id", nil)
			return
		}
		classID = &id
	}

	reservations, err := h.service.ListConfirmed(r.Context(), classID)
	if err != nil {
		respondServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}
