package repository

import (
	"gym-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Member      MemberRepository
	Class       ClassRepository
	Plan        PlanRepository
	Reservation ReservationRepository
	Payment     PaymentRepository
	CheckIn     CheckInRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Member:      NewMemberRepository(db, log),
		Class:       NewClassRepository(db, log),
		Plan:        NewPlanRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		CheckIn:     NewCheckInRepository(db, log),
	}
}
