package adaptor

import (
	"encoding/json"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckInHandler struct {
	service usecase.CheckInService
	log     *zap.Logger
}

func NewCheckInHandler(service usecase.CheckInService, log *zap.Logger) *CheckInHandler {
	return &CheckInHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkin")),
	}
}

// Record handles POST /api/checkins
func (h *CheckInHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	checkIn, err := h.service.Record(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "record check-in")
		return
	}

	utils.ResponseCreated(w, "success", checkIn)
}

// List handles GET /api/checkins
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	checkIns, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list check-ins")
		return
	}

	utils.ResponseSuccess(w, "success", checkIns)
}
