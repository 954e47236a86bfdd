// Package sweep orchestrates the deadline notification engine: it scans
// active projects, fans out to their assigned users and records one
// deduplicated warning per (user, project, tier). Sweeps are triggered
// externally and are safe to re-run or run concurrently; idempotency
// rests on the notification store's dedup key, not on any scheduling.
package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
	"gestion-talento/internal/service/deadline"
	"gestion-talento/internal/service/email"
)

// ProjectScanError records one failed notification creation. Individual
// failures never abort the sweep.
type ProjectScanError struct {
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Err       string    `json:"error"`
}

type SweepResult struct {
	ProjectsScanned      int                `json:"projects_scanned"`
	DueProjects          int                `json:"due_projects"`
	NotificationsCreated int                `json:"notifications_created"`
	Errors               []ProjectScanError `json:"errors,omitempty"`
}

type WelcomeInput struct {
	CallerID    uuid.UUID
	CallerLevel domain.Level
	TargetID    uuid.UUID
	DisplayName string
}

type Service interface {
	RunDeadlineSweep(ctx context.Context, now time.Time) (*SweepResult, error)
	// SendWelcome creates the target's single welcome notification.
	// Cross-user provisioning requires admin capability; self-targeting
	// does not. Returns whether a new row was created.
	SendWelcome(ctx context.Context, input WelcomeInput) (bool, error)
}

type service struct {
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	notifRepo      repository.NotificationRepository
	userRepo       repository.UserRepository
	emailSvc       email.Service
	windows        []int
}

func NewService(
	projectRepo repository.ProjectRepository,
	assignmentRepo repository.AssignmentRepository,
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	emailSvc email.Service,
	windows []int,
) Service {
	if len(windows) == 0 {
		windows = []int{7, 3, 1}
	}
	return &service{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		notifRepo:      notifRepo,
		userRepo:       userRepo,
		emailSvc:       emailSvc,
		windows:        windows,
	}
}

func (s *service) RunDeadlineSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	projects, err := s.projectRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active projects: %w", domain.ErrStoreUnavailable)
	}

	due := deadline.FindDueProjects(projects, now, s.windows)
	result := &SweepResult{
		ProjectsScanned: len(projects),
		DueProjects:     len(due),
	}

	for _, d := range due {
		assignments, err := s.assignmentRepo.ListActiveByProject(ctx, d.Project.ID, now)
		if err != nil {
			result.Errors = append(result.Errors, ProjectScanError{
				ProjectID: d.Project.ID,
				Err:       err.Error(),
			})
			continue
		}

		// One warning per assigned user; duplicate assignment rows for
		// the same user collapse on the dedup key.
		for _, a := range assignments {
			created, err := s.createWarning(ctx, a.UserID, d)
			if err != nil {
				result.Errors = append(result.Errors, ProjectScanError{
					ProjectID: d.Project.ID,
					UserID:    a.UserID,
					Err:       err.Error(),
				})
				continue
			}
			if created {
				result.NotificationsCreated++
			}
		}
	}

	return result, nil
}

func (s *service) createWarning(ctx context.Context, userID uuid.UUID, d deadline.DueProject) (bool, error) {
	payload, _ := json.Marshal(map[string]any{
		"project_id":    d.Project.ID,
		"project_title": d.Project.Title,
		"deadline":      d.Project.Deadline,
		"tier":          d.Tier,
		"days_left":     d.DaysLeft,
	})

	key := domain.DeadlineWarningKey(userID, d.Project.ID, d.Tier)
	notif := &domain.Notification{
		ID:       uuid.New(),
		UserID:   userID,
		Kind:     domain.NotifDeadlineWarning,
		DedupKey: &key,
		Title:    "Fecha límite próxima",
		Message:  fmt.Sprintf("El proyecto %q vence en %d día(s)", d.Project.Title, d.DaysLeft),
		Data:     payload,
	}

	return s.notifRepo.CreateIfAbsent(ctx, notif)
}

func (s *service) SendWelcome(ctx context.Context, input WelcomeInput) (bool, error) {
	if input.TargetID != input.CallerID && !input.CallerLevel.Has(domain.CapabilityAdmin) {
		return false, fmt.Errorf("welcome for %s: %w", input.TargetID, domain.ErrForbidden)
	}

	key := domain.WelcomeKey(input.TargetID)
	notif := &domain.Notification{
		ID:       uuid.New(),
		UserID:   input.TargetID,
		Kind:     domain.NotifWelcome,
		DedupKey: &key,
		Title:    "Bienvenido",
		Message:  fmt.Sprintf("Hola %s, tu cuenta está lista.", input.DisplayName),
	}

	created, err := s.notifRepo.CreateIfAbsent(ctx, notif)
	if err != nil {
		return false, fmt.Errorf("create welcome: %w", domain.ErrStoreUnavailable)
	}

	if created && s.emailSvc != nil && s.userRepo != nil {
		if user, err := s.userRepo.GetByID(ctx, input.TargetID); err == nil && user != nil && user.Email != "" {
			go func(toEmail, name string) {
				if err := s.emailSvc.SendWelcomeEmail(context.Background(), toEmail, name); err != nil {
					log.Printf("welcome email to %s failed: %v", toEmail, err)
				}
			}(user.Email, input.DisplayName)
		}
	}

	return created, nil
}
