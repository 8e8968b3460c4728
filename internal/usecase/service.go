package usecase

import (
	"gym-booking/internal/data/repository"
	"gym-booking/internal/notify"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Member      MemberService
	Class       ClassService
	Plan        PlanService
	Reservation ReservationService
	Payment     PaymentService
	Notifier    NotifierService
	CheckIn     CheckInService
}

func NewService(repo *repository.Repository, config *utils.Config, sender notify.Sender, log *zap.Logger) *Service {
	return &Service{
		Member:      NewMemberService(repo.Member, log),
		Class:       NewClassService(repo, log),
		Plan:        NewPlanService(repo.Plan, log),
		Reservation: NewReservationService(repo, log),
		Payment:     NewPaymentService(repo, log),
		Notifier:    NewNotifierService(repo.Member, sender, config.Notifier, log),
		CheckIn:     NewCheckInService(repo, log),
	}
}
