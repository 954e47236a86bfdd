package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, userID, notifID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	NotifyLevelChanged(ctx context.Context, userID uuid.UUID, level domain.Level) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Normalize()
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, userID, notifID uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, notifID)
	if err != nil {
		return err
	}
	if notif == nil {
		return fmt.Errorf("notification %s: %w", notifID, domain.ErrNotFound)
	}
	if notif.UserID != userID {
		return fmt.Errorf("notification %s belongs to another user: %w", notifID, domain.ErrForbidden)
	}
	return s.notifRepo.MarkAsRead(ctx, notifID)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// NotifyLevelChanged informs a user their access level changed. Level
// changes repeat legitimately, so this kind carries no dedup key.
func (s *service) NotifyLevelChanged(ctx context.Context, userID uuid.UUID, level domain.Level) error {
	data, _ := json.Marshal(map[string]string{"level": level.String()})

	return s.notifRepo.Create(ctx, &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Kind:    domain.NotifLevelChanged,
		Title:   "Nivel actualizado",
		Message: fmt.Sprintf("Tu nivel de acceso ahora es %s", level),
		Data:    data,
	})
}
