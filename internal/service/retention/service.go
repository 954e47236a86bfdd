// Package retention purges notifications older than a configurable
// horizon. The purge is an admin-only, externally triggered operation.
package retention

import (
	"context"
	"fmt"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

// DefaultDays is applied when no horizon is configured.
const DefaultDays = 30

type Service interface {
	Purge(ctx context.Context, callerLevel domain.Level, daysOld int) (int64, error)
	// DefaultHorizon is the configured horizon in days, used when a
	// trigger does not specify one.
	DefaultHorizon() int
}

type service struct {
	notifRepo   repository.NotificationRepository
	defaultDays int
	now         func() time.Time
}

func NewService(notifRepo repository.NotificationRepository, defaultDays int) Service {
	if defaultDays <= 0 {
		defaultDays = DefaultDays
	}
	return &service{notifRepo: notifRepo, defaultDays: defaultDays, now: time.Now}
}

func (s *service) DefaultHorizon() int {
	return s.defaultDays
}

func (s *service) Purge(ctx context.Context, callerLevel domain.Level, daysOld int) (int64, error) {
	if !callerLevel.Has(domain.CapabilityAdmin) {
		return 0, fmt.Errorf("retention purge: %w", domain.ErrForbidden)
	}
	if daysOld <= 0 {
		return 0, fmt.Errorf("retention horizon must be positive, got %d: %w", daysOld, domain.ErrInvalidArgument)
	}

	cutoff := s.now().AddDate(0, 0, -daysOld)
	deleted, err := s.notifRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete notifications: %w", domain.ErrStoreUnavailable)
	}
	return deleted, nil
}
