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

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// Create handles POST /api/classes
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	class, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create class")
		return
	}

	utils.ResponseCreated(w, "success", class)
}

// GetByID handles GET /api/classes/{id}
func (h *ClassHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	classID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid class ID", nil)
		return
	}

	class, err := h.service.GetByID(r.Context(), classID)
	if err != nil {
		respondServiceError(w, h.log, err, "get class")
		return
	}

	utils.ResponseSuccess(w, "success", class)
}

// List handles GET /api/classes. With ?occupancy=true each class also
// carries its confirmed count and seats left.
func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("occupancy") == "true" {
		classes, err := h.service.ListWithOccupancy(r.Context())
		if err != nil {
			respondServiceError(w, h.log, err, "list classes with occupancy")
			return
		}
		utils.ResponseSuccess(w, "success", classes)
		return
	}

	classes, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}
