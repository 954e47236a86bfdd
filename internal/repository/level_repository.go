package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type LevelRepository interface {
	Append(ctx context.Context, change *domain.LevelChange) error
	// GetCurrent returns the most recent level change for the user, nil
	// when the user has no level history.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.LevelChange, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LevelChange, error)
}

type levelRepository struct {
	db *sqlx.DB
}

func NewLevelRepository(db *sqlx.DB) LevelRepository {
	return &levelRepository{db: db}
}

func (r *levelRepository) Append(ctx context.Context, change *domain.LevelChange) error {
	query := `
		INSERT INTO level_changes (user_id, level, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING seq`

	return r.db.QueryRowxContext(ctx, query,
		change.UserID, change.Level, change.ChangedBy, change.ChangedAt,
	).Scan(&change.Seq)
}

func (r *levelRepository) GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.LevelChange, error) {
	var change domain.LevelChange
	// seq breaks ties between changes sharing a timestamp: the last
	// inserted row wins.
	query := `
		SELECT * FROM level_changes
		WHERE user_id = $1
		ORDER BY changed_at DESC, seq DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &change, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &change, nil
}

func (r *levelRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LevelChange, error) {
	var changes []domain.LevelChange
	query := `
		SELECT * FROM level_changes
		WHERE user_id = $1
		ORDER BY changed_at DESC, seq DESC`

	err := r.db.SelectContext(ctx, &changes, query, userID)
	return changes, err
}
