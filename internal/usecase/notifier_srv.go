package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/response"
	"gym-booking/internal/notify"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type NotifierService interface {
	Upcoming(ctx context.Context, horizonDays int) (*response.UpcomingExpirationsResponse, error)
	Lapsed(ctx context.Context) ([]response.LapsedMemberResponse, error)
	SendReminder(ctx context.Context, memberID string) (*response.ReminderResponse, error)

	// DefaultHorizon is the configured window applied when a caller
	// does not name one.
	DefaultHorizon() int
}

type notifierService struct {
	members repository.MemberRepository
	sender  notify.Sender
	config  utils.NotifierConfig
	log     *zap.Logger
	now     func() time.Time
}

func NewNotifierService(members repository.MemberRepository, sender notify.Sender, config utils.NotifierConfig, log *zap.Logger) NotifierService {
	return &notifierService{
		members: members,
		sender:  sender,
		config:  config,
		log:     log.With(zap.String("service", "notifier")),
		now:     time.Now,
	}
}

// RenderReminder maps a member and their days remaining to the message
// that should reach them. Pure; delivery happens elsewhere.
func RenderReminder(name string, daysRemaining int, expiresOn string) string {
	switch {
	case daysRemaining < 0:
		return fmt.Sprintf("Hola %s, tu membresía venció hace %d días (%s). Renueva para recuperar el acceso.", name, -daysRemaining, expiresOn)
	case daysRemaining == 0:
		return fmt.Sprintf("Hola %s, tu membresía VENCE HOY. ¡No te quedes sin acceso!", name)
	default:
		return fmt.Sprintf("Hola %s, tu membresía vence en %d días (%s). ¡Renueva a tiempo!", name, daysRemaining, expiresOn)
	}
}

func (s *notifierService) DefaultHorizon() int {
	if s.config.HorizonDays < 0 {
		return 0
	}
	return s.config.HorizonDays
}

func expirationLabel(daysRemaining int) string {
	if daysRemaining == 0 {
		return "today"
	}
	return fmt.Sprintf("in %d days", daysRemaining)
}

func (s *notifierService) Upcoming(ctx context.Context, horizonDays int) (*response.UpcomingExpirationsResponse, error) {
	if horizonDays < 0 {
		return nil, apperr.Validation("horizon days must not be negative")
	}

	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	today := s.now()
	var expiring []response.ExpiringMemberResponse
	for _, member := range members {
		daysRemaining, ok := s.daysRemaining(member, today)
		if !ok {
			continue
		}
		if daysRemaining < 0 || daysRemaining > horizonDays {
			continue
		}
		expiring = append(expiring, response.ExpiringMemberResponse{
			MemberID:      member.ID,
			Name:          member.Name,
			ExpiresOn:     member.ExpiresOn,
			DaysRemaining: daysRemaining,
			Label:         expirationLabel(daysRemaining),
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysRemaining < expiring[j].DaysRemaining
	})

	return &response.UpcomingExpirationsResponse{
		Total:       len(expiring),
		HorizonDays: horizonDays,
		QueryDate:   utils.FormatDate(today),
		Members:     expiring,
	}, nil
}

func (s *notifierService) Lapsed(ctx context.Context) ([]response.LapsedMemberResponse, error) {
	members, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	today := s.now()
	var lapsed []response.LapsedMemberResponse
	for _, member := range members {
		daysRemaining, ok := s.daysRemaining(member, today)
		if !ok || daysRemaining >= 0 {
			continue
		}
		lapsed = append(lapsed, response.LapsedMemberResponse{
			MemberID:    member.ID,
			Name:        member.Name,
			ExpiresOn:   member.ExpiresOn,
			DaysOverdue: -daysRemaining,
		})
	}

	sort.SliceStable(lapsed, func(i, j int) bool {
		return lapsed[i].DaysOverdue > lapsed[j].DaysOverdue
	})

	return lapsed, nil
}

func (s *notifierService) SendReminder(ctx context.Context, memberID string) (*response.ReminderResponse, error) {
	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if member == nil {
		return nil, apperr.NotFound("member %s not found", memberID)
	}

	expiration, err := member.ExpirationDate()
	if err != nil {
		return nil, apperr.Validation("member %s has an unparseable expiration date %q", memberID, member.ExpiresOn)
	}
	if member.Phone == "" {
		return nil, apperr.Validation("member %s has no phone on file", memberID)
	}

	daysRemaining := utils.DaysBetween(s.now(), expiration)
	message := RenderReminder(member.Name, daysRemaining, member.ExpiresOn)

	if err := s.sender.Send(ctx, member.Phone, message); err != nil {
		s.log.Error("Reminder delivery failed",
			zap.Error(err),
			zap.String("member_id", memberID),
		)
		return nil, apperr.DeliveryFailure(err, "deliver reminder to member %s", memberID)
	}

	s.log.Info("Reminder sent",
		zap.String("member_id", memberID),
		zap.Int("days_remaining", daysRemaining),
	)

	return &response.ReminderResponse{
		MemberID:  memberID,
		Message:   message,
		Delivered: true,
	}, nil
}

// daysRemaining parses the member's stored expiration. Records with
// malformed dates are skipped by bulk queries instead of failing them.
func (s *notifierService) daysRemaining(member *entity.Member, today time.Time) (int, bool) {
	expiration, err := member.ExpirationDate()
	if err != nil {
		s.log.Warn("Skipping member with unparseable expiration date",
			zap.String("member_id", member.ID),
			zap.String("expires_on", member.ExpiresOn),
		)
		return 0, false
	}
	return utils.DaysBetween(today, expiration), true
}
