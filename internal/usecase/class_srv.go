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

	"go.uber.org/zap"
)

const (
	defaultClassDurationMin = 60
	defaultInstructor       = "TBD"
)

type ClassService interface {
	Create(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error)
	GetByID(ctx context.Context, id int64) (*response.ClassResponse, error)
	List(ctx context.Context) ([]response.ClassResponse, error)
	ListWithOccupancy(ctx context.Context) ([]response.ClassOccupancyResponse, error)
}

type classService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClassService(repo *repository.Repository, log *zap.Logger) ClassService {
	return &classService{
		repo: repo,
		log:  log.With(zap.String("service", "class")),
	}
}

func (s *classService) Create(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create class validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	class := &entity.Class{
		Name:        req.Name,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		CapacityMax: req.CapacityMax,
		Instructor:  req.Instructor,
		CreatedAt:   time.Now(),
	}
	if class.DurationMin == 0 {
		class.DurationMin = defaultClassDurationMin
	}
	if class.Instructor == "" {
		class.Instructor = defaultInstructor
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.log.Info("Class created",
		zap.Int64("class_id", class.ID),
		zap.String("name", class.Name),
		zap.Int("capacity_max", class.CapacityMax),
	)

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) GetByID(ctx context.Context, id int64) (*response.ClassResponse, error) {
	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	if class == nil {
		return nil, apperr.NotFound("class %d not found", id)
	}

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) List(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.repo.Class.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	responses := make([]response.ClassResponse, len(classes))
	for i, class := range classes {
		responses[i] = response.ClassToResponse(class)
	}

	return responses, nil
}

func (s *classService) ListWithOccupancy(ctx context.Context) ([]response.ClassOccupancyResponse, error) {
	classes, err := s.repo.Class.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	responses := make([]response.ClassOccupancyResponse, len(classes))
	for i, class := range classes {
		confirmed, err := s.repo.Reservation.CountConfirmedByClass(ctx, class.ID)
		if err != nil {
			return nil, fmt.Errorf("count occupancy for class %d: %w", class.ID, err)
		}

		seatsLeft := class.CapacityMax - confirmed
		if seatsLeft < 0 {
			seatsLeft = 0
		}

		responses[i] = response.ClassOccupancyResponse{
			ClassResponse: response.ClassToResponse(class),
			Confirmed:     confirmed,
			SeatsLeft:     seatsLeft,
			Full:          confirmed >= class.CapacityMax,
		}
	}

	return responses, nil
}
