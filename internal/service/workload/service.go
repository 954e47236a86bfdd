// Package workload computes how much of a user's weekly capacity is
// consumed by active project assignments and keeps per-period snapshots
// for historical display.
package workload

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	CurrentLoad(ctx context.Context, userID uuid.UUID) (*domain.LoadSummary, error)
	SnapshotPeriod(ctx context.Context, userID uuid.UUID, period string) (*domain.WorkloadSnapshot, error)
	History(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.WorkloadSnapshot], error)
}

type service struct {
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	workloadRepo   repository.WorkloadRepository
	now            func() time.Time
}

func NewService(userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, workloadRepo repository.WorkloadRepository) Service {
	return &service{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		workloadRepo:   workloadRepo,
		now:            time.Now,
	}
}

// ComputeCurrentLoad sums the weekly hours of assignments still active at
// the evaluation instant. The percentage is not clamped: values over 100
// are the overload signal.
func ComputeCurrentLoad(assignments []domain.Assignment, availableHours float64, now time.Time) domain.LoadSummary {
	var total float64
	for _, a := range assignments {
		if a.ActiveAt(now) {
			total += a.HoursPerWeek
		}
	}

	var percent float64
	if availableHours > 0 {
		percent = total / availableHours * 100
	}

	return domain.LoadSummary{
		TotalHours:     total,
		AvailableHours: availableHours,
		Percent:        percent,
		Class:          domain.ClassifyLoad(percent),
	}
}

func (s *service) CurrentLoad(ctx context.Context, userID uuid.UUID) (*domain.LoadSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", domain.ErrStoreUnavailable)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	assignments, err := s.assignmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", domain.ErrStoreUnavailable)
	}

	summary := ComputeCurrentLoad(assignments, user.AvailableHours, s.now())
	return &summary, nil
}

// SnapshotPeriod captures the user's load for one period. The write is an
// upsert keyed by (user, period): re-running the aggregation overwrites
// the existing snapshot instead of duplicating it.
func (s *service) SnapshotPeriod(ctx context.Context, userID uuid.UUID, period string) (*domain.WorkloadSnapshot, error) {
	if period == "" {
		period = domain.PeriodOf(s.now())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", domain.ErrStoreUnavailable)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	assignments, err := s.assignmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", domain.ErrStoreUnavailable)
	}

	now := s.now()
	summary := ComputeCurrentLoad(assignments, user.AvailableHours, now)

	breakdown := breakdownByProject(assignments, now)
	perProject, err := json.Marshal(breakdown)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.WorkloadSnapshot{
		UserID:           userID,
		Period:           period,
		TotalLoadPercent: summary.Percent,
		TotalHours:       summary.TotalHours,
		AvailableHours:   user.AvailableHours,
		PerProject:       perProject,
	}

	if err := s.workloadRepo.Upsert(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", domain.ErrStoreUnavailable)
	}
	return snapshot, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.WorkloadSnapshot], error) {
	params.Normalize()
	snapshots, total, err := s.workloadRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.WorkloadSnapshot]{}, fmt.Errorf("list snapshots: %w", domain.ErrStoreUnavailable)
	}
	return domain.NewPaginatedResponse(snapshots, params.Page, params.PageSize, total), nil
}

// breakdownByProject sums active hours per project, ordered by hours
// descending with project id ascending as the deterministic tie-break.
func breakdownByProject(assignments []domain.Assignment, now time.Time) []domain.ProjectHours {
	totals := make(map[uuid.UUID]float64)
	for _, a := range assignments {
		if a.ActiveAt(now) {
			totals[a.ProjectID] += a.HoursPerWeek
		}
	}

	breakdown := make([]domain.ProjectHours, 0, len(totals))
	for projectID, hours := range totals {
		breakdown = append(breakdown, domain.ProjectHours{ProjectID: projectID, Hours: hours})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Hours != breakdown[j].Hours {
			return breakdown[i].Hours > breakdown[j].Hours
		}
		return breakdown[i].ProjectID.String() < breakdown[j].ProjectID.String()
	})
	return breakdown
}
