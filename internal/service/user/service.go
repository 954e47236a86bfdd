package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
	"gestion-talento/internal/service/notification"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	// AssignLevel appends a level change for the target user. Caller must
	// hold admin capability (exact ordinal, checked by the handler's
	// capability gate before this is reached; re-checked here).
	AssignLevel(ctx context.Context, callerID uuid.UUID, callerLevel domain.Level, input domain.AssignLevelInput) (*domain.LevelChange, error)
	LevelHistory(ctx context.Context, userID uuid.UUID) ([]domain.LevelChange, error)
}

type service struct {
	userRepo  repository.UserRepository
	levelRepo repository.LevelRepository
	notifSvc  notification.Service
}

func NewService(userRepo repository.UserRepository, levelRepo repository.LevelRepository, notifSvc notification.Service) Service {
	return &service{
		userRepo:  userRepo,
		levelRepo: levelRepo,
		notifSvc:  notifSvc,
	}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvailableHours != nil {
		if *input.AvailableHours <= 0 {
			return nil, fmt.Errorf("available hours must be positive: %w", domain.ErrInvalidArgument)
		}
		user.AvailableHours = *input.AvailableHours
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) AssignLevel(ctx context.Context, callerID uuid.UUID, callerLevel domain.Level, input domain.AssignLevelInput) (*domain.LevelChange, error) {
	if !callerLevel.Has(domain.CapabilityAdmin) {
		return nil, fmt.Errorf("assign level: %w", domain.ErrForbidden)
	}
	if !input.Level.IsValid() {
		return nil, fmt.Errorf("level %d out of range: %w", input.Level, domain.ErrInvalidArgument)
	}

	target, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("user %s: %w", input.UserID, domain.ErrNotFound)
	}

	change := &domain.LevelChange{
		UserID:    input.UserID,
		Level:     input.Level,
		ChangedBy: callerID,
		ChangedAt: time.Now(),
	}
	if err := s.levelRepo.Append(ctx, change); err != nil {
		return nil, err
	}

	if s.notifSvc != nil {
		if err := s.notifSvc.NotifyLevelChanged(ctx, input.UserID, input.Level); err != nil {
			// Informational only; the level change itself stands.
			return change, nil
		}
	}
	return change, nil
}

func (s *service) LevelHistory(ctx context.Context, userID uuid.UUID) ([]domain.LevelChange, error) {
	return s.levelRepo.ListByUser(ctx, userID)
}
