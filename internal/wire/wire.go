// internal/wire/wire.go
package wire

import (
	"net/http"

	"gym-booking/internal/adaptor"
	"gym-booking/internal/notify"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/middleware"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// NewSender picks the reminder delivery transport from config.
func NewSender(config *utils.Config, logger *zap.Logger) notify.Sender {
	if config.Twilio.Enabled {
		return notify.NewTwilioSender(config.Twilio, logger)
	}
	return notify.NewLogSender(logger)
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireMember(r, handler.Member)
	wireClass(r, handler.Class)
	wirePlan(r, handler.Plan)
	wireReservation(r, handler.Reservation)
	wirePayment(r, handler.Payment)
	wireNotification(r, handler.Notification)
	wireCheckIn(r, handler.CheckIn)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
