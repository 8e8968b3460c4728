package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBookingAttempts bounds the retry loop on transient storage
// contention. Every other error kind propagates on the first attempt.
const maxBookingAttempts = 3

type ReservationService interface {
	Book(ctx context.Context, req *request.BookReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, reservationID string) error
	ListConfirmed(ctx context.Context, classID *int64) ([]response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger

	// classLocks serializes the duplicate/capacity check with the
	// insert, per class. Two concurrent bookings for the last seat
	// must not both pass the count.
	classLocks sync.Map // int64 -> *sync.Mutex
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) lockClass(classID int64) *sync.Mutex {
	lock, _ := s.classLocks.LoadOrStore(classID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *reservationService) Book(ctx context.Context, req *request.BookReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book reservation validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	member, err := s.repo.Member.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if member == nil {
		return nil, apperr.NotFound("member %s not found", req.MemberID)
	}

	class, err := s.repo.Class.FindByID(ctx, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("resolve class: %w", err)
	}
	if class == nil {
		return nil, apperr.NotFound("class %d not found", req.ClassID)
	}

	var reservation *entity.Reservation
	for attempt := 1; ; attempt++ {
		reservation, err = s.bookLocked(ctx, member, class)
		if err == nil {
			break
		}
		if !apperr.IsKind(err, apperr.KindTransient) || attempt >= maxBookingAttempts {
			return nil, err
		}
		s.log.Warn("Booking attempt hit storage contention, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Int64("class_id", class.ID),
		)
	}

	s.log.Info("Reservation confirmed",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("member_id", member.ID),
		zap.Int64("class_id", class.ID),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// bookLocked runs the check-then-act sequence under the class lock:
// duplicate booking, capacity ceiling, insert.
func (s *reservationService) bookLocked(ctx context.Context, member *entity.Member, class *entity.Class) (*entity.Reservation, error) {
	lock := s.lockClass(class.ID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.Reservation.FindConfirmed(ctx, member.ID, class.ID)
	if err != nil {
		return nil, fmt.Errorf("check duplicate booking: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("member %s already has a reservation for class %d", member.ID, class.ID)
	}

	confirmed, err := s.repo.Reservation.CountConfirmedByClass(ctx, class.ID)
	if err != nil {
		return nil, fmt.Errorf("count class occupancy: %w", err)
	}
	if confirmed >= class.CapacityMax {
		return nil, apperr.Conflict("class %d is full (%d/%d)", class.ID, confirmed, class.CapacityMax)
	}

	reservation := &entity.Reservation{
		ID:        uuid.New(),
		MemberID:  member.ID,
		ClassID:   class.ID,
		Status:    entity.ReservationStatusConfirmed,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	return reservation, nil
}

func (s *reservationService) Cancel(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return apperr.Validation("invalid reservation ID %s", reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve reservation: %w", err)
	}
	if reservation == nil {
		return apperr.NotFound("reservation %s not found", reservationID)
	}

	// Re-cancelling is a no-op, not an error.
	if reservation.Status == entity.ReservationStatusCancelled {
		return nil
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("member_id", reservation.MemberID),
		zap.Int64("class_id", reservation.ClassID),
	)

	return nil
}

func (s *reservationService) ListConfirmed(ctx context.Context, classID *int64) ([]response.ReservationResponse, error) {
	var (
		reservations []*entity.Reservation
		err          error
	)

	if classID != nil {
		reservations, err = s.repo.Reservation.FindConfirmedByClass(ctx, *classID)
	} else {
		reservations, err = s.repo.Reservation.FindAllConfirmed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list confirmed reservations: %w", err)
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		responses[i] = response.ReservationToResponse(reservation)
	}

	return responses, nil
}
