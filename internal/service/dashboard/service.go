package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
	"gestion-talento/internal/service/deadline"
)

type Stats struct {
	Period          string `json:"period"`
	ActiveUsers     int64  `json:"active_users"`
	ActiveProjects  int64  `json:"active_projects"`
	ProjectsDueSoon int    `json:"projects_due_soon"`
	Overloaded      int    `json:"overloaded"`
	Underloaded     int    `json:"underloaded"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	userRepo     repository.UserRepository
	projectRepo  repository.ProjectRepository
	workloadRepo repository.WorkloadRepository
	redis        *redis.Client
	windows      []int
}

func NewService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository, workloadRepo repository.WorkloadRepository, redis *redis.Client, windows []int) Service {
	return &service{
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		workloadRepo: workloadRepo,
		redis:        redis,
		windows:      windows,
	}
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	cacheKey := "dashboard:stats"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	now := time.Now()
	period := domain.PeriodOf(now)

	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeProjects, err := s.projectRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	due := deadline.FindDueProjects(projects, now, s.windows)

	snapshots, err := s.workloadRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	var overloaded, underloaded int
	for _, snap := range snapshots {
		switch domain.ClassifyLoad(snap.TotalLoadPercent) {
		case domain.LoadOverload:
			overloaded++
		case domain.LoadUnderload:
			underloaded++
		}
	}

	stats := &Stats{
		Period:          period,
		ActiveUsers:     activeUsers,
		ActiveProjects:  activeProjects,
		ProjectsDueSoon: len(due),
		Overloaded:      overloaded,
		Underloaded:     underloaded,
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}
