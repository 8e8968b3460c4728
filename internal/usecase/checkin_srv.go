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

type CheckInService interface {
	Record(ctx context.Context, req *request.RecordCheckInRequest) (*response.CheckInResponse, error)
	List(ctx context.Context) ([]response.CheckInResponse, error)
}

type checkInService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCheckInService(repo *repository.Repository, log *zap.Logger) CheckInService {
	return &checkInService{
		repo: repo,
		log:  log.With(zap.String("service", "checkin")),
	}
}

func (s *checkInService) Record(ctx context.Context, req *request.RecordCheckInRequest) (*response.CheckInResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record check-in validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	member, err := s.repo.Member.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if member == nil {
		return nil, apperr.NotFound("member %s not found", req.MemberID)
	}

	checkIn := &entity.CheckIn{
		ID:         uuid.New(),
		MemberID:   member.ID,
		MemberName: member.Name,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CheckIn.Create(ctx, checkIn); err != nil {
		s.log.Error("Failed to record check-in",
			zap.Error(err),
			zap.String("member_id", member.ID),
		)
		return nil, fmt.Errorf("record check-in: %w", err)
	}

	s.log.Info("Check-in recorded",
		zap.String("member_id", member.ID),
	)

	resp := response.CheckInToResponse(checkIn)
	return &resp, nil
}

func (s *checkInService) List(ctx context.Context) ([]response.CheckInResponse, error) {
	checkIns, err := s.repo.CheckIn.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	responses := make([]response.CheckInResponse, len(checkIns))
	for i, checkIn := range checkIns {
		responses[i] = response.CheckInToResponse(checkIn)
	}

	return responses, nil
}
