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

type MemberHandler struct {
	service usecase.MemberService
	log     *zap.Logger
}

func NewMemberHandler(service usecase.MemberService, log *zap.Logger) *MemberHandler {
	return &MemberHandler{
		service: service,
		log:     log.With(zap.String("handler", "member")),
	}
}

// Register handles POST /api/members
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	member, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "register member")
		return
	}

	utils.ResponseCreated(w, "success", member)
}

// GetByID handles GET /api/members/{id}
func (h *MemberHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")
	if memberID == "" {
		utils.ResponseBadRequest(w, "Member ID is required", nil)
		return
	}

	member, err := h.service.GetByID(r.Context(), memberID)
	if err != nil {
		respondServiceError(w, h.log, err, "get member")
		return
	}

	utils.ResponseSuccess(w, "success", member)
}

// List handles GET /api/members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list members")
		return
	}

	utils.ResponseSuccess(w, "success", members)
}
