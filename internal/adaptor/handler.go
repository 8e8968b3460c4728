package adaptor

import (
	"gym-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Member       *MemberHandler
	Class        *ClassHandler
	Plan         *PlanHandler
	Reservation  *ReservationHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
	CheckIn      *CheckInHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Member:       NewMemberHandler(service.Member, log),
		Class:        NewClassHandler(service.Class, log),
		Plan:         NewPlanHandler(service.Plan, log),
		Reservation:  NewReservationHandler(service.Reservation, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Notification: NewNotificationHandler(service.Notifier, log),
		CheckIn:      NewCheckInHandler(service.CheckIn, log),
	}
}
