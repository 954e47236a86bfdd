package mocks

import (
	"context"

	"gestion-talento/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LevelRepository struct {
	mock.Mock
}

func (m *LevelRepository) Append(ctx context.Context, change *domain.LevelChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *LevelRepository) GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.LevelChange, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelChange), args.Error(1)
}

func (m *LevelRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LevelChange, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.LevelChange), args.Error(1)
}
