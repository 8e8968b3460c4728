package usecase

import (
	"context"
	"fmt"
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

// maxPaymentAttempts bounds the retry loop on transient storage
// contention, mirroring the booking path.
const maxPaymentAttempts = 3

type PaymentService interface {
	Pay(ctx context.Context, req *request.RecordPaymentRequest) (*response.RenewalResponse, error)
	List(ctx context.Context) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
		now:  time.Now,
	}
}

func (s *paymentService) Pay(ctx context.Context, req *request.RecordPaymentRequest) (*response.RenewalResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	member, err := s.repo.Member.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if member == nil {
		return nil, apperr.NotFound("member %s not found", req.MemberID)
	}

	plan, err := s.repo.Plan.FindByID(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("resolve plan: %w", err)
	}
	if plan == nil {
		return nil, apperr.NotFound("plan %d not found", req.PlanID)
	}

	// The new expiration runs from the payment date, not from the
	// member's current expiration. Remaining paid days are discarded.
	today := s.now()
	newExpiration := today.AddDate(0, 0, plan.DurationDays)

	payment := &entity.Payment{
		ID:        uuid.New(),
		MemberID:  member.ID,
		PlanID:    plan.ID,
		Amount:    plan.Price,
		Method:    req.Method,
		PaidOn:    utils.FormatDate(today),
		ExpiresOn: utils.FormatDate(newExpiration),
		Status:    entity.PaymentStatusPaid,
		CreatedAt: today,
	}

	for attempt := 1; ; attempt++ {
		err = s.repo.Payment.CreateWithRenewal(ctx, payment)
		if err == nil {
			break
		}
		if !apperr.IsKind(err, apperr.KindTransient) || attempt >= maxPaymentAttempts {
			s.log.Error("Failed to record payment",
				zap.Error(err),
				zap.String("member_id", member.ID),
				zap.Int64("plan_id", plan.ID),
			)
			return nil, fmt.Errorf("record payment: %w", err)
		}
		s.log.Warn("Payment attempt hit storage contention, retrying",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("member_id", member.ID),
		)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("member_id", member.ID),
		zap.String("plan", plan.Name),
		zap.Float64("amount", payment.Amount),
		zap.String("new_expires_on", payment.ExpiresOn),
	)

	return &response.RenewalResponse{
		Payment:      response.PaymentToResponse(payment),
		MemberID:     member.ID,
		MemberName:   member.Name,
		NewExpiresOn: payment.ExpiresOn,
	}, nil
}

func (s *paymentService) List(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}
