package user_test

import (
	"context"
	"testing"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"
	"gestion-talento/internal/service/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_AssignLevel(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	input := domain.AssignLevelInput{UserID: targetID, Level: domain.LevelProjectLead}

	t.Run("Admin Assigns", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockLevelRepo := new(mocks.LevelRepository)

		mockUserRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID}, nil).Once()
		mockLevelRepo.On("Append", ctx, mock.MatchedBy(func(c *domain.LevelChange) bool {
			return c.UserID == targetID && c.Level == domain.LevelProjectLead && c.ChangedBy == callerID
		})).Return(nil).Once()

		svc := user.NewService(mockUserRepo, mockLevelRepo, nil)
		change, err := svc.AssignLevel(ctx, callerID, domain.LevelAdmin, input)

		require.NoError(t, err)
		assert.Equal(t, domain.LevelProjectLead, change.Level)
		mockLevelRepo.AssertExpectations(t)
	})

	t.Run("Non Admin Forbidden", func(t *testing.T) {
		svc := user.NewService(new(mocks.UserRepository), new(mocks.LevelRepository), nil)

		for _, level := range []domain.Level{domain.LevelEmployee, domain.LevelProjectManager} {
			_, err := svc.AssignLevel(ctx, callerID, level, input)
			assert.ErrorIs(t, err, domain.ErrForbidden, "level %s", level)
		}
	})

	t.Run("Level Out Of Range", func(t *testing.T) {
		svc := user.NewService(new(mocks.UserRepository), new(mocks.LevelRepository), nil)

		_, err := svc.AssignLevel(ctx, callerID, domain.LevelAdmin, domain.AssignLevelInput{UserID: targetID, Level: 5})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = svc.AssignLevel(ctx, callerID, domain.LevelAdmin, domain.AssignLevelInput{UserID: targetID, Level: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Unknown Target", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		svc := user.NewService(mockUserRepo, new(mocks.LevelRepository), nil)
		_, err := svc.AssignLevel(ctx, callerID, domain.LevelAdmin, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Rejects Non Positive Hours", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()

		bad := 0.0
		svc := user.NewService(mockUserRepo, new(mocks.LevelRepository), nil)
		_, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{AvailableHours: &bad})

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Updates Capacity", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.AvailableHours == 32
		})).Return(nil).Once()

		hours := 32.0
		svc := user.NewService(mockUserRepo, new(mocks.LevelRepository), nil)
		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateUserInput{AvailableHours: &hours})

		require.NoError(t, err)
		assert.Equal(t, 32.0, updated.AvailableHours)
		mockUserRepo.AssertExpectations(t)
	})
}
