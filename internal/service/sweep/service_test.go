package sweep_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/mocks"
	"gestion-talento/internal/service/sweep"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memNotifStore mimics the unique index on dedup_key: concurrent inserts
// racing on one key produce exactly one row.
type memNotifStore struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*domain.Notification
	keys map[string]uuid.UUID

	failKeys map[string]bool
}

func newMemNotifStore() *memNotifStore {
	return &memNotifStore{
		byID:     make(map[uuid.UUID]*domain.Notification),
		keys:     make(map[string]uuid.UUID),
		failKeys: make(map[string]bool),
	}
}

func (s *memNotifStore) CreateIfAbsent(ctx context.Context, notif *domain.Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notif.DedupKey == nil {
		return false, errors.New("dedup key required")
	}
	if s.failKeys[*notif.DedupKey] {
		return false, errors.New("insert failed")
	}
	if existing, ok := s.keys[*notif.DedupKey]; ok {
		notif.ID = existing
		return false, nil
	}
	copied := *notif
	copied.CreatedAt = time.Now()
	s.byID[notif.ID] = &copied
	s.keys[*notif.DedupKey] = notif.ID
	return true, nil
}

func (s *memNotifStore) Create(ctx context.Context, notif *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *notif
	s.byID[notif.ID] = &copied
	return nil
}

func (s *memNotifStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id], nil
}

func (s *memNotifStore) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Notification
	for _, n := range s.byID {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, int64(len(out)), nil
}

func (s *memNotifStore) MarkAsRead(ctx context.Context, id uuid.UUID) error        { return nil }
func (s *memNotifStore) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error { return nil }
func (s *memNotifStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *memNotifStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (s *memNotifStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestRunDeadlineSweep_Idempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	projectID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()

	project := domain.Project{
		ID:       projectID,
		Title:    "Migración ERP",
		Active:   true,
		Deadline: timePtr(now.Add(48 * time.Hour)),
	}

	mockProjectRepo := new(mocks.ProjectRepository)
	mockAssignmentRepo := new(mocks.AssignmentRepository)
	store := newMemNotifStore()

	mockProjectRepo.On("ListActive", ctx).Return([]domain.Project{project}, nil)
	mockAssignmentRepo.On("ListActiveByProject", ctx, projectID, now).Return([]domain.Assignment{
		{UserID: userA, ProjectID: projectID},
		{UserID: userB, ProjectID: projectID},
	}, nil)

	svc := sweep.NewService(mockProjectRepo, mockAssignmentRepo, store, nil, nil, []int{7, 3, 1})

	first, err := svc.RunDeadlineSweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ProjectsScanned)
	assert.Equal(t, 1, first.DueProjects)
	assert.Equal(t, 2, first.NotificationsCreated)
	assert.Empty(t, first.Errors)

	// The second run scans the same ground but creates nothing.
	second, err := svc.RunDeadlineSweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, second.DueProjects)
	assert.Equal(t, 0, second.NotificationsCreated)
	assert.Equal(t, 2, store.count())
}

func TestRunDeadlineSweep_ConcurrentSweeps(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	projectID := uuid.New()
	userID := uuid.New()

	project := domain.Project{
		ID:       projectID,
		Title:    "Proyecto",
		Active:   true,
		Deadline: timePtr(now.Add(24 * time.Hour)),
	}

	mockProjectRepo := new(mocks.ProjectRepository)
	mockAssignmentRepo := new(mocks.AssignmentRepository)
	store := newMemNotifStore()

	mockProjectRepo.On("ListActive", ctx).Return([]domain.Project{project}, nil)
	mockAssignmentRepo.On("ListActiveByProject", ctx, projectID, now).Return([]domain.Assignment{
		{UserID: userID, ProjectID: projectID},
	}, nil)

	svc := sweep.NewService(mockProjectRepo, mockAssignmentRepo, store, nil, nil, []int{7, 3, 1})

	const sweeps = 8
	results := make([]*sweep.SweepResult, sweeps)

	var wg sync.WaitGroup
	for i := 0; i < sweeps; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := svc.RunDeadlineSweep(ctx, now)
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	var created int
	for _, r := range results {
		require.NotNil(t, r)
		created += r.NotificationsCreated
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, store.count())
}

func TestRunDeadlineSweep_PartialFailureContinues(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	brokenProject := domain.Project{
		ID:       uuid.New(),
		Title:    "Roto",
		Active:   true,
		Deadline: timePtr(now.Add(24 * time.Hour)),
	}
	healthyProject := domain.Project{
		ID:       uuid.New(),
		Title:    "Sano",
		Active:   true,
		Deadline: timePtr(now.Add(24 * time.Hour)),
	}
	userID := uuid.New()

	mockProjectRepo := new(mocks.ProjectRepository)
	mockAssignmentRepo := new(mocks.AssignmentRepository)
	store := newMemNotifStore()

	mockProjectRepo.On("ListActive", ctx).Return([]domain.Project{brokenProject, healthyProject}, nil)
	mockAssignmentRepo.On("ListActiveByProject", ctx, brokenProject.ID, now).Return(nil, errors.New("timeout"))
	mockAssignmentRepo.On("ListActiveByProject", ctx, healthyProject.ID, now).Return([]domain.Assignment{
		{UserID: userID, ProjectID: healthyProject.ID},
	}, nil)

	svc := sweep.NewService(mockProjectRepo, mockAssignmentRepo, store, nil, nil, []int{7, 3, 1})

	result, err := svc.RunDeadlineSweep(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 2, result.DueProjects)
	assert.Equal(t, 1, result.NotificationsCreated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, brokenProject.ID, result.Errors[0].ProjectID)
}

func TestRunDeadlineSweep_FailedInsertRecorded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	projectID := uuid.New()
	okUser := uuid.New()
	failUser := uuid.New()

	project := domain.Project{
		ID:       projectID,
		Title:    "Proyecto",
		Active:   true,
		Deadline: timePtr(now.Add(24 * time.Hour)),
	}

	mockProjectRepo := new(mocks.ProjectRepository)
	mockAssignmentRepo := new(mocks.AssignmentRepository)
	store := newMemNotifStore()
	store.failKeys[domain.DeadlineWarningKey(failUser, projectID, 1)] = true

	mockProjectRepo.On("ListActive", ctx).Return([]domain.Project{project}, nil)
	mockAssignmentRepo.On("ListActiveByProject", ctx, projectID, now).Return([]domain.Assignment{
		{UserID: failUser, ProjectID: projectID},
		{UserID: okUser, ProjectID: projectID},
	}, nil)

	svc := sweep.NewService(mockProjectRepo, mockAssignmentRepo, store, nil, nil, []int{7, 3, 1})

	result, err := svc.RunDeadlineSweep(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, 1, result.NotificationsCreated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, failUser, result.Errors[0].UserID)
}

func TestRunDeadlineSweep_ListActiveFails(t *testing.T) {
	ctx := context.Background()

	mockProjectRepo := new(mocks.ProjectRepository)
	mockProjectRepo.On("ListActive", ctx).Return(nil, errors.New("down")).Once()

	svc := sweep.NewService(mockProjectRepo, new(mocks.AssignmentRepository), newMemNotifStore(), nil, nil, nil)

	_, err := svc.RunDeadlineSweep(ctx, time.Now())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestSendWelcome(t *testing.T) {
	ctx := context.Background()

	newSvc := func(store *memNotifStore) sweep.Service {
		return sweep.NewService(new(mocks.ProjectRepository), new(mocks.AssignmentRepository), store, nil, nil, nil)
	}

	t.Run("Self Target Without Admin", func(t *testing.T) {
		store := newMemNotifStore()
		userID := uuid.New()

		created, err := newSvc(store).SendWelcome(ctx, sweep.WelcomeInput{
			CallerID:    userID,
			CallerLevel: domain.LevelEmployee,
			TargetID:    userID,
			DisplayName: "Ana",
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, store.count())
	})

	t.Run("Cross User Requires Admin", func(t *testing.T) {
		store := newMemNotifStore()

		_, err := newSvc(store).SendWelcome(ctx, sweep.WelcomeInput{
			CallerID:    uuid.New(),
			CallerLevel: domain.LevelProjectManager,
			TargetID:    uuid.New(),
			DisplayName: "Ana",
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, 0, store.count())
	})

	t.Run("Admin Provisions Other User", func(t *testing.T) {
		store := newMemNotifStore()

		created, err := newSvc(store).SendWelcome(ctx, sweep.WelcomeInput{
			CallerID:    uuid.New(),
			CallerLevel: domain.LevelAdmin,
			TargetID:    uuid.New(),
			DisplayName: "Ana",
		})

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Retry Creates Nothing", func(t *testing.T) {
		store := newMemNotifStore()
		userID := uuid.New()
		input := sweep.WelcomeInput{
			CallerID:    userID,
			CallerLevel: domain.LevelEmployee,
			TargetID:    userID,
			DisplayName: "Ana",
		}
		svc := newSvc(store)

		created, err := svc.SendWelcome(ctx, input)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = svc.SendWelcome(ctx, input)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 1, store.count())
	})
}
