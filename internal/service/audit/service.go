package audit

import (
	"context"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, detail any, ip, userAgent *string) error
	GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{auditRepo: auditRepo}
}

func (s *service) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, detail any, ip, userAgent *string) error {
	return repository.RecordAudit(ctx, s.auditRepo, userID, action, entityType, entityID, detail, ip, userAgent)
}

func (s *service) GetRecentActivities(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	params := domain.PaginationParams{Page: 1, PageSize: limit}
	logs, _, err := s.auditRepo.List(ctx, params)
	return logs, err
}
