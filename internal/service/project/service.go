package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Project], error)

	Assign(ctx context.Context, projectID uuid.UUID, input domain.CreateAssignmentInput) (*domain.Assignment, error)
	Unassign(ctx context.Context, projectID, assignmentID uuid.UUID) error
	ListAssignments(ctx context.Context, projectID uuid.UUID) ([]domain.Assignment, error)
}

type service struct {
	projectRepo    repository.ProjectRepository
	assignmentRepo repository.AssignmentRepository
	userRepo       repository.UserRepository
}

func NewService(projectRepo repository.ProjectRepository, assignmentRepo repository.AssignmentRepository, userRepo repository.UserRepository) Service {
	return &service{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidArgument)
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Active:      true,
		TotalHours:  input.TotalHours,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return project, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}
	if input.Active != nil {
		project.Active = *input.Active
	}
	if input.TotalHours != nil {
		project.TotalHours = *input.TotalHours
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Project], error) {
	params.Normalize()
	projects, total, err := s.projectRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Project]{}, err
	}
	return domain.NewPaginatedResponse(projects, params.Page, params.PageSize, total), nil
}

func (s *service) Assign(ctx context.Context, projectID uuid.UUID, input domain.CreateAssignmentInput) (*domain.Assignment, error) {
	if input.HoursPerWeek <= 0 {
		return nil, fmt.Errorf("hours per week must be positive: %w", domain.ErrInvalidArgument)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("end date before start date: %w", domain.ErrInvalidArgument)
	}

	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", input.UserID, domain.ErrNotFound)
	}

	assignment := &domain.Assignment{
		ID:           uuid.New(),
		UserID:       input.UserID,
		ProjectID:    projectID,
		HoursPerWeek: input.HoursPerWeek,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *service) Unassign(ctx context.Context, projectID, assignmentID uuid.UUID) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil || assignment.ProjectID != projectID {
		return fmt.Errorf("assignment %s: %w", assignmentID, domain.ErrNotFound)
	}
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

func (s *service) ListAssignments(ctx context.Context, projectID uuid.UUID) ([]domain.Assignment, error) {
	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByProject(ctx, projectID)
}
