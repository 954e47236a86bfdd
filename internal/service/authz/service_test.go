package authz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"
	"gestion-talento/internal/service/authz"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthzService_CurrentLevel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("No History Defaults To Employee", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(nil, nil).Once()

		svc := authz.NewService(mockLevelRepo)
		level, err := svc.CurrentLevel(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, domain.LevelEmployee, level)
		mockLevelRepo.AssertExpectations(t)
	})

	t.Run("Latest Entry Wins", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(&domain.LevelChange{
			UserID:    userID,
			Level:     domain.LevelPeopleLead,
			ChangedAt: time.Now(),
		}, nil).Once()

		svc := authz.NewService(mockLevelRepo)
		level, err := svc.CurrentLevel(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, domain.LevelPeopleLead, level)
	})

	t.Run("Store Error Is Not Employee", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(nil, errors.New("connection refused")).Once()

		svc := authz.NewService(mockLevelRepo)
		_, err := svc.CurrentLevel(ctx, userID)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestAuthzService_Require(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Granted", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(&domain.LevelChange{
			UserID: userID,
			Level:  domain.LevelAdmin,
		}, nil).Once()

		svc := authz.NewService(mockLevelRepo)
		level, err := svc.Require(ctx, userID, domain.CapabilityAdmin)

		assert.NoError(t, err)
		assert.Equal(t, domain.LevelAdmin, level)
	})

	t.Run("Higher Ordinal Does Not Escalate", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(&domain.LevelChange{
			UserID: userID,
			Level:  domain.LevelProjectManager,
		}, nil).Once()

		svc := authz.NewService(mockLevelRepo)
		_, err := svc.Require(ctx, userID, domain.CapabilityAdmin)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Employee Forbidden", func(t *testing.T) {
		mockLevelRepo := new(mocks.LevelRepository)
		mockLevelRepo.On("GetCurrent", ctx, userID).Return(nil, nil).Once()

		svc := authz.NewService(mockLevelRepo)
		_, err := svc.Require(ctx, userID, domain.CapabilityProjectLead)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
