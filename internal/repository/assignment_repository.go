package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assignment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Assignment, error)
	// ListActiveByProject returns the assignments still consuming capacity
	// at the given instant, i.e. without an end date or ending after it.
	ListActiveByProject(ctx context.Context, projectID uuid.UUID, at time.Time) ([]domain.Assignment, error)
}

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	query := `
		INSERT INTO assignments (id, user_id, project_id, hours_per_week, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		assignment.ID, assignment.UserID, assignment.ProjectID,
		assignment.HoursPerWeek, assignment.StartDate, assignment.EndDate,
	).Scan(&assignment.CreatedAt)
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	var assignment domain.Assignment
	query := `SELECT * FROM assignments WHERE id = $1`

	err := r.db.GetContext(ctx, &assignment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assignments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *assignmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	query := `SELECT * FROM assignments WHERE user_id = $1 ORDER BY start_date DESC`

	err := r.db.SelectContext(ctx, &assignments, query, userID)
	return assignments, err
}

func (r *assignmentRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	query := `SELECT * FROM assignments WHERE project_id = $1 ORDER BY start_date DESC`

	err := r.db.SelectContext(ctx, &assignments, query, projectID)
	return assignments, err
}

func (r *assignmentRepository) ListActiveByProject(ctx context.Context, projectID uuid.UUID, at time.Time) ([]domain.Assignment, error) {
	var assignments []domain.Assignment
	query := `
		SELECT * FROM assignments
		WHERE project_id = $1 AND (end_date IS NULL OR end_date > $2)
		ORDER BY start_date DESC`

	err := r.db.SelectContext(ctx, &assignments, query, projectID, at)
	return assignments, err
}
