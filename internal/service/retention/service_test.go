package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_DefaultHorizon(t *testing.T) {
	assert.Equal(t, 14, NewService(new(mocks.NotificationRepository), 14).DefaultHorizon())
	// Unset or nonsense configuration falls back to the stock horizon.
	assert.Equal(t, DefaultDays, NewService(new(mocks.NotificationRepository), 0).DefaultHorizon())
	assert.Equal(t, DefaultDays, NewService(new(mocks.NotificationRepository), -1).DefaultHorizon())
}

func TestService_Purge(t *testing.T) {
	ctx := context.Background()
	frozenNow := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	newTestService := func(notifRepo *mocks.NotificationRepository) *service {
		return &service{
			notifRepo: notifRepo,
			now:       func() time.Time { return frozenNow },
		}
	}

	t.Run("Deletes At Computed Cutoff", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		expectedCutoff := frozenNow.AddDate(0, 0, -30)
		mockNotifRepo.On("DeleteOlderThan", ctx, expectedCutoff).Return(int64(12), nil).Once()

		svc := newTestService(mockNotifRepo)
		deleted, err := svc.Purge(ctx, domain.LevelAdmin, 30)

		require.NoError(t, err)
		assert.Equal(t, int64(12), deleted)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)

		svc := newTestService(mockNotifRepo)
		for _, level := range []domain.Level{domain.LevelEmployee, domain.LevelPeopleLead, domain.LevelProjectLead, domain.LevelProjectManager} {
			_, err := svc.Purge(ctx, level, 30)
			assert.ErrorIs(t, err, domain.ErrForbidden, "level %s", level)
		}
		mockNotifRepo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
	})

	t.Run("Non Positive Horizon Rejected", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)

		svc := newTestService(mockNotifRepo)
		_, err := svc.Purge(ctx, domain.LevelAdmin, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = svc.Purge(ctx, domain.LevelAdmin, -5)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Store Error", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockNotifRepo.On("DeleteOlderThan", ctx, mock.Anything).Return(int64(0), errors.New("down")).Once()

		svc := newTestService(mockNotifRepo)
		_, err := svc.Purge(ctx, domain.LevelAdmin, 30)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
