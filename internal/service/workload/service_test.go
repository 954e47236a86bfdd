package workload

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var frozenNow = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func newTestService(userRepo *mocks.UserRepository, assignmentRepo *mocks.AssignmentRepository, workloadRepo *mocks.WorkloadRepository) *service {
	return &service{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		workloadRepo:   workloadRepo,
		now:            func() time.Time { return frozenNow },
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeCurrentLoad(t *testing.T) {
	projectA := uuid.New()
	projectB := uuid.New()

	t.Run("Sums Active Assignments", func(t *testing.T) {
		assignments := []domain.Assignment{
			{ProjectID: projectA, HoursPerWeek: 20},
			{ProjectID: projectB, HoursPerWeek: 15},
		}

		summary := ComputeCurrentLoad(assignments, 40, frozenNow)

		assert.Equal(t, 35.0, summary.TotalHours)
		assert.Equal(t, 87.5, summary.Percent)
		assert.Equal(t, domain.LoadOverload, summary.Class)
	})

	t.Run("Ended Assignments Excluded", func(t *testing.T) {
		assignments := []domain.Assignment{
			{ProjectID: projectA, HoursPerWeek: 20},
			{ProjectID: projectB, HoursPerWeek: 15, EndDate: timePtr(frozenNow.Add(-time.Hour))},
		}

		summary := ComputeCurrentLoad(assignments, 40, frozenNow)

		assert.Equal(t, 20.0, summary.TotalHours)
		assert.Equal(t, 50.0, summary.Percent)
		assert.Equal(t, domain.LoadNominal, summary.Class)
	})

	t.Run("Assignment Ending Later Still Counts", func(t *testing.T) {
		assignments := []domain.Assignment{
			{ProjectID: projectA, HoursPerWeek: 10, EndDate: timePtr(frozenNow.Add(time.Hour))},
		}

		summary := ComputeCurrentLoad(assignments, 40, frozenNow)
		assert.Equal(t, 10.0, summary.TotalHours)
	})

	t.Run("Percent Not Clamped", func(t *testing.T) {
		assignments := []domain.Assignment{
			{ProjectID: projectA, HoursPerWeek: 60},
		}

		summary := ComputeCurrentLoad(assignments, 40, frozenNow)
		assert.Equal(t, 150.0, summary.Percent)
		assert.Equal(t, domain.LoadOverload, summary.Class)
	})

	t.Run("Zero Capacity Is Zero Percent", func(t *testing.T) {
		assignments := []domain.Assignment{
			{ProjectID: projectA, HoursPerWeek: 20},
		}

		summary := ComputeCurrentLoad(assignments, 0, frozenNow)
		assert.Equal(t, 0.0, summary.Percent)
		assert.Equal(t, domain.LoadUnderload, summary.Class)
	})

	t.Run("No Assignments", func(t *testing.T) {
		summary := ComputeCurrentLoad(nil, 40, frozenNow)
		assert.Equal(t, 0.0, summary.TotalHours)
		assert.Equal(t, domain.LoadUnderload, summary.Class)
	})
}

func TestService_CurrentLoad(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAssignmentRepo := new(mocks.AssignmentRepository)

		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()
		mockAssignmentRepo.On("ListByUser", ctx, userID).Return([]domain.Assignment{
			{ProjectID: uuid.New(), HoursPerWeek: 24},
		}, nil).Once()

		svc := newTestService(mockUserRepo, mockAssignmentRepo, nil)
		summary, err := svc.CurrentLoad(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, 60.0, summary.Percent)
		assert.Equal(t, domain.LoadNominal, summary.Class)
		mockUserRepo.AssertExpectations(t)
		mockAssignmentRepo.AssertExpectations(t)
	})

	t.Run("Unknown User", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		svc := newTestService(mockUserRepo, new(mocks.AssignmentRepository), nil)
		_, err := svc.CurrentLoad(ctx, userID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Store Error", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, errors.New("down")).Once()

		svc := newTestService(mockUserRepo, new(mocks.AssignmentRepository), nil)
		_, err := svc.CurrentLoad(ctx, userID)

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestService_SnapshotPeriod(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Defaults Period To Current Week", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAssignmentRepo := new(mocks.AssignmentRepository)
		mockWorkloadRepo := new(mocks.WorkloadRepository)

		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()
		mockAssignmentRepo.On("ListByUser", ctx, userID).Return([]domain.Assignment{}, nil).Once()
		mockWorkloadRepo.On("Upsert", ctx, mock.MatchedBy(func(s *domain.WorkloadSnapshot) bool {
			return s.Period == domain.PeriodOf(frozenNow) && s.UserID == userID
		})).Return(nil).Once()

		svc := newTestService(mockUserRepo, mockAssignmentRepo, mockWorkloadRepo)
		snapshot, err := svc.SnapshotPeriod(ctx, userID, "")

		require.NoError(t, err)
		assert.Equal(t, "2026-W35", snapshot.Period)
		mockWorkloadRepo.AssertExpectations(t)
	})

	t.Run("Breakdown Ordered By Hours Then ID", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAssignmentRepo := new(mocks.AssignmentRepository)
		mockWorkloadRepo := new(mocks.WorkloadRepository)

		projectSmall := uuid.MustParse("11111111-1111-1111-1111-111111111111")
		projectBig := uuid.MustParse("22222222-2222-2222-2222-222222222222")
		projectTied := uuid.MustParse("33333333-3333-3333-3333-333333333333")

		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()
		mockAssignmentRepo.On("ListByUser", ctx, userID).Return([]domain.Assignment{
			{ProjectID: projectSmall, HoursPerWeek: 5},
			{ProjectID: projectBig, HoursPerWeek: 10},
			{ProjectID: projectBig, HoursPerWeek: 10},
			{ProjectID: projectTied, HoursPerWeek: 5},
		}, nil).Once()
		mockWorkloadRepo.On("Upsert", ctx, mock.Anything).Return(nil).Once()

		svc := newTestService(mockUserRepo, mockAssignmentRepo, mockWorkloadRepo)
		snapshot, err := svc.SnapshotPeriod(ctx, userID, "2026-W30")
		require.NoError(t, err)

		breakdown, err := snapshot.Breakdown()
		require.NoError(t, err)
		require.Len(t, breakdown, 3)

		// Duplicate assignment rows on one project are summed.
		assert.Equal(t, projectBig, breakdown[0].ProjectID)
		assert.Equal(t, 20.0, breakdown[0].Hours)
		// Equal hours tie-break on project id.
		assert.Equal(t, projectSmall, breakdown[1].ProjectID)
		assert.Equal(t, projectTied, breakdown[2].ProjectID)
	})

	t.Run("Upsert Failure", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockAssignmentRepo := new(mocks.AssignmentRepository)
		mockWorkloadRepo := new(mocks.WorkloadRepository)

		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, AvailableHours: 40}, nil).Once()
		mockAssignmentRepo.On("ListByUser", ctx, userID).Return([]domain.Assignment{}, nil).Once()
		mockWorkloadRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("down")).Once()

		svc := newTestService(mockUserRepo, mockAssignmentRepo, mockWorkloadRepo)
		_, err := svc.SnapshotPeriod(ctx, userID, "2026-W30")

		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
