package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *domain.Skill) error {
	query := `
		INSERT INTO skills (id, user_id, name, proficiency, years)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		skill.ID, skill.UserID, skill.Name, skill.Proficiency, skill.Years,
	).Scan(&skill.CreatedAt, &skill.UpdatedAt)
}

func (r *skillRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	var skill domain.Skill
	query := `SELECT * FROM skills WHERE id = $1`

	err := r.db.GetContext(ctx, &skill, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *domain.Skill) error {
	query := `
		UPDATE skills
		SET name = :name, proficiency = :proficiency, years = :years, updated_at = NOW()
		WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, skill)
	return err
}

func (r *skillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	var skills []domain.Skill
	query := `SELECT * FROM skills WHERE user_id = $1 ORDER BY proficiency DESC, name ASC`

	err := r.db.SelectContext(ctx, &skills, query, userID)
	return skills, err
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
