package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReservationService returns canned results so handler tests only
// exercise decoding and the error-kind to status-code mapping.
type stubReservationService struct {
	bookResp   *response.ReservationResponse
	bookErr    error
	cancelErr  error
	listResult []response.ReservationResponse
	listErr    error

	lastClassID *int64
}

func (s *stubReservationService) Book(ctx context.Context, req *request.BookReservationRequest) (*response.ReservationResponse, error) {
	return s.bookResp, s.bookErr
}

func (s *stubReservationService) Cancel(ctx context.Context, reservationID string) error {
	return s.cancelErr
}

func (s *stubReservationService) ListConfirmed(ctx context.Context, classID *int64) ([]response.ReservationResponse, error) {
	s.lastClassID = classID
	return s.listResult, s.listErr
}

func newReservationRouter(service *stubReservationService) *chi.Mux {
	handler := NewReservationHandler(service, zapNop())
	r := chi.NewRouter()
	r.Post("/api/reservations", handler.Book)
	r.Get("/api/reservations", handler.ListConfirmed)
	r.Delete("/api/reservations/{id}", handler.Cancel)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestBookHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"member missing", apperr.NotFound("member M-001 not found"), http.StatusNotFound},
		{"class full", apperr.Conflict("class 1 is full (10/10)"), http.StatusConflict},
		{"bad input", apperr.Validation("validation failed"), http.StatusBadRequest},
		{"storage down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newReservationRouter(&stubReservationService{bookErr: tt.serviceErr})

			body := `{"member_id":"M-001","class_id":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Status)
		})
	}
}

func TestBookHandlerSuccess(t *testing.T) {
	service := &stubReservationService{
		bookResp: &response.ReservationResponse{
			ID:       "3b9b8c3e-09a5-4ba7-a65a-6a135c9e2f10",
			MemberID: "M-001",
			ClassID:  1,
		},
	}
	router := newReservationRouter(service)

	body := `{"member_id":"M-001","class_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.NotNil(t, envelope.Data)
}

func TestBookHandlerRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing fields", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newReservationRouter(&stubReservationService{})

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCancelHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"unknown reservation", apperr.NotFound("reservation not found"), http.StatusNotFound},
		{"malformed id", apperr.Validation("invalid reservation ID"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newReservationRouter(&stubReservationService{cancelErr: tt.serviceErr})

			req := httptest.NewRequest(http.MethodDelete, "/api/reservations/3b9b8c3e-09a5-4ba7-a65a-6a135c9e2f10", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListConfirmedHandlerClassFilter(t *testing.T) {
	t.Run("passes the class filter through", func(t *testing.T) {
		service := &stubReservationService{}
		router := newReservationRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/api/reservations?class_id=7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, service.lastClassID)
		assert.Equal(t, int64(7), *service.lastClassID)
	})

	t.Run("no filter without class_id", func(t *testing.T) {
		service := &stubReservationService{}
		router := newReservationRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, service.lastClassID)
	})

	t.Run("rejects a non-numeric class_id", func(t *testing.T) {
		router := newReservationRouter(&stubReservationService{})

		req := httptest.NewRequest(http.MethodGet, "/api/reservations?class_id=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
