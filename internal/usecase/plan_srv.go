package usecase

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/apperr"

	"go.uber.org/zap"
)

type PlanService interface {
	GetByID(ctx context.Context, id int64) (*response.PlanResponse, error)
	List(ctx context.Context) ([]response.PlanResponse, error)

	// EnsureDefaults seeds the standard plans when the table is empty.
	EnsureDefaults(ctx context.Context) error
}

type planService struct {
	plans repository.PlanRepository
	log   *zap.Logger
}

func NewPlanService(plans repository.PlanRepository, log *zap.Logger) PlanService {
	return &planService{
		plans: plans,
		log:   log.With(zap.String("service", "plan")),
	}
}

func (s *planService) GetByID(ctx context.Context, id int64) (*response.PlanResponse, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if plan == nil {
		return nil, apperr.NotFound("plan %d not found", id)
	}

	resp := response.PlanToResponse(plan)
	return &resp, nil
}

func (s *planService) List(ctx context.Context) ([]response.PlanResponse, error) {
	plans, err := s.plans.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	responses := make([]response.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = response.PlanToResponse(plan)
	}

	return responses, nil
}

func (s *planService) EnsureDefaults(ctx context.Context) error {
	count, err := s.plans.Count(ctx)
	if err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []*entity.Plan{
		{Name: "Básico", Price: 50.00, DurationDays: 30, Description: "Acceso a instalaciones básicas en horario estándar", Active: true},
		{Name: "Premium", Price: 80.00, DurationDays: 30, Description: "Acceso ilimitado a todas las clases e instalaciones", Active: true},
		{Name: "Familiar", Price: 120.00, DurationDays: 30, Description: "Para hasta 4 personas - Ahorro familiar", Active: true},
	}

	for _, plan := range defaults {
		if err := s.plans.Create(ctx, plan); err != nil {
			return fmt.Errorf("seed plan %s: %w", plan.Name, err)
		}
	}

	s.log.Info("Default membership plans seeded", zap.Int("count", len(defaults)))
	return nil
}
