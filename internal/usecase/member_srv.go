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

type MemberService interface {
	Register(ctx context.Context, req *request.RegisterMemberRequest) (*response.MemberResponse, error)
	GetByID(ctx context.Context, id string) (*response.MemberResponse, error)
	List(ctx context.Context) ([]response.MemberResponse, error)
}

type memberService struct {
	members repository.MemberRepository
	log     *zap.Logger
}

func NewMemberService(members repository.MemberRepository, log *zap.Logger) MemberService {
	return &memberService{
		members: members,
		log:     log.With(zap.String("service", "member")),
	}
}

func (s *memberService) Register(ctx context.Context, req *request.RegisterMemberRequest) (*response.MemberResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register member validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.members.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing member: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("member %s already exists", req.ID)
	}

	member := &entity.Member{
		ID:        req.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		ExpiresOn: req.ExpiresOn,
		CreatedAt: time.Now(),
	}

	if err := s.members.Create(ctx, member); err != nil {
		s.log.Error("Failed to register member",
			zap.Error(err),
			zap.String("member_id", req.ID),
		)
		return nil, fmt.Errorf("register member: %w", err)
	}

	s.log.Info("Member registered",
		zap.String("member_id", member.ID),
		zap.String("expires_on", member.ExpiresOn),
	)

	resp := response.MemberToResponse(member)
	return &resp, nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*response.MemberResponse, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	if member == nil {
		return nil, apperr.NotFound("member %s not found", id)
	}

	resp := response.MemberToResponse(member)
	return &resp, nil
}

func (s *memberService) List(ctx context.Context) ([]response.MemberResponse, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]response.MemberResponse, len(members))
	for i, member := range members {
		responses[i] = response.MemberToResponse(member)
	}

	return responses, nil
}
