package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type ExperienceRepository interface {
	Create(ctx context.Context, entry *domain.ExperienceEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExperienceEntry, error)
	Update(ctx context.Context, entry *domain.ExperienceEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExperienceEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db *sqlx.DB
}

func NewExperienceRepository(db *sqlx.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, entry *domain.ExperienceEntry) error {
	query := `
		INSERT INTO experience_entries (id, user_id, company, title, start_date, end_date, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.UserID, entry.Company, entry.Title,
		entry.StartDate, entry.EndDate, entry.Summary,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

func (r *experienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExperienceEntry, error) {
	var entry domain.ExperienceEntry
	query := `SELECT * FROM experience_entries WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *experienceRepository) Update(ctx context.Context, entry *domain.ExperienceEntry) error {
	query := `
		UPDATE experience_entries
		SET company = :company, title = :title, start_date = :start_date,
			end_date = :end_date, summary = :summary, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *experienceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExperienceEntry, error) {
	var entries []domain.ExperienceEntry
	query := `SELECT * FROM experience_entries WHERE user_id = $1 ORDER BY start_date DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	return entries, err
}

func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM experience_entries WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
