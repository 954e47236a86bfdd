package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	ListActive(ctx context.Context) ([]domain.Project, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Project, int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, title, description, deadline, active, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.Deadline,
		project.Active, project.TotalHours,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := `SELECT * FROM projects WHERE id = $1`

	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = :title, description = :description, deadline = :deadline,
			active = :active, total_hours = :total_hours, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, project)
	return err
}

func (r *projectRepository) ListActive(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	query := `SELECT * FROM projects WHERE active = true ORDER BY deadline ASC NULLS LAST`

	err := r.db.SelectContext(ctx, &projects, query)
	return projects, err
}

func (r *projectRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Project, int64, error) {
	params.Normalize()

	var total int64
	countQuery := `SELECT COUNT(*) FROM projects`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	var projects []domain.Project
	query := `
		SELECT * FROM projects
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &projects, query, params.PageSize, params.Offset())
	return projects, total, err
}

func (r *projectRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM projects WHERE active = true`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
