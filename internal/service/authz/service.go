// Package authz resolves user identities to their ordinal access level
// and gates privileged operations on exact-level capabilities.
package authz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	// CurrentLevel resolves the user's current level from the level
	// history. A user with no history is a plain employee, never an
	// error; only an unreachable store fails.
	CurrentLevel(ctx context.Context, userID uuid.UUID) (domain.Level, error)
	Require(ctx context.Context, userID uuid.UUID, capability domain.Capability) (domain.Level, error)
}

type service struct {
	levelRepo repository.LevelRepository
}

func NewService(levelRepo repository.LevelRepository) Service {
	return &service{levelRepo: levelRepo}
}

func (s *service) CurrentLevel(ctx context.Context, userID uuid.UUID) (domain.Level, error) {
	change, err := s.levelRepo.GetCurrent(ctx, userID)
	if err != nil {
		return domain.LevelEmployee, fmt.Errorf("level lookup for %s: %w", userID, domain.ErrStoreUnavailable)
	}
	if change == nil {
		return domain.LevelEmployee, nil
	}
	return change.Level, nil
}

// Require resolves the user's level and fails with ErrForbidden unless
// it grants the capability.
func (s *service) Require(ctx context.Context, userID uuid.UUID, capability domain.Capability) (domain.Level, error) {
	level, err := s.CurrentLevel(ctx, userID)
	if err != nil {
		return level, err
	}
	if !level.Has(capability) {
		return level, fmt.Errorf("%s requires %s: %w", userID, capability, domain.ErrForbidden)
	}
	return level, nil
}
