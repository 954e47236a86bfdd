package notification_test

import (
	"context"
	"testing"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"
	"gestion-talento/internal/service/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()

	t.Run("Owner Marks Read", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockNotifRepo.On("GetByID", ctx, notifID).Return(&domain.Notification{ID: notifID, UserID: userID}, nil).Once()
		mockNotifRepo.On("MarkAsRead", ctx, notifID).Return(nil).Once()

		svc := notification.NewService(mockNotifRepo)
		err := svc.MarkAsRead(ctx, userID, notifID)

		assert.NoError(t, err)
		mockNotifRepo.AssertExpectations(t)
	})

	t.Run("Foreign Notification Forbidden", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockNotifRepo.On("GetByID", ctx, notifID).Return(&domain.Notification{ID: notifID, UserID: uuid.New()}, nil).Once()

		svc := notification.NewService(mockNotifRepo)
		err := svc.MarkAsRead(ctx, userID, notifID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		mockNotifRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
	})

	t.Run("Missing Notification", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockNotifRepo.On("GetByID", ctx, notifID).Return(nil, nil).Once()

		svc := notification.NewService(mockNotifRepo)
		err := svc.MarkAsRead(ctx, userID, notifID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestNotificationService_NotifyLevelChanged(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockNotifRepo := new(mocks.NotificationRepository)
	mockNotifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		// Level changes repeat legitimately, so no dedup key is set.
		return n.UserID == userID && n.Kind == domain.NotifLevelChanged && n.DedupKey == nil
	})).Return(nil).Once()

	svc := notification.NewService(mockNotifRepo)
	err := svc.NotifyLevelChanged(ctx, userID, domain.LevelPeopleLead)

	require.NoError(t, err)
	mockNotifRepo.AssertExpectations(t)
}
