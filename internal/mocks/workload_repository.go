package mocks

import (
	"context"

	"gestion-talento/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type WorkloadRepository struct {
	mock.Mock
}

func (m *WorkloadRepository) Upsert(ctx context.Context, snapshot *domain.WorkloadSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *WorkloadRepository) Get(ctx context.Context, userID uuid.UUID, period string) (*domain.WorkloadSnapshot, error) {
	args := m.Called(ctx, userID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkloadSnapshot), args.Error(1)
}

func (m *WorkloadRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.WorkloadSnapshot, int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).([]domain.WorkloadSnapshot), args.Get(1).(int64), args.Error(2)
}

func (m *WorkloadRepository) ListByPeriod(ctx context.Context, period string) ([]domain.WorkloadSnapshot, error) {
	args := m.Called(ctx, period)
	return args.Get(0).([]domain.WorkloadSnapshot), args.Error(1)
}
