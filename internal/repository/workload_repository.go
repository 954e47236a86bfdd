package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type WorkloadRepository interface {
	// Upsert stores the snapshot for (user, period), replacing any
	// existing row for the same period.
	Upsert(ctx context.Context, snapshot *domain.WorkloadSnapshot) error
	Get(ctx context.Context, userID uuid.UUID, period string) (*domain.WorkloadSnapshot, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.WorkloadSnapshot, int64, error)
	ListByPeriod(ctx context.Context, period string) ([]domain.WorkloadSnapshot, error)
}

type workloadRepository struct {
	db *sqlx.DB
}

func NewWorkloadRepository(db *sqlx.DB) WorkloadRepository {
	return &workloadRepository{db: db}
}

func (r *workloadRepository) Upsert(ctx context.Context, snapshot *domain.WorkloadSnapshot) error {
	query := `
		INSERT INTO workload_snapshots (user_id, period, total_load_percent, total_hours, available_hours, per_project)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, period) DO UPDATE
		SET total_load_percent = EXCLUDED.total_load_percent,
			total_hours = EXCLUDED.total_hours,
			available_hours = EXCLUDED.available_hours,
			per_project = EXCLUDED.per_project,
			created_at = NOW()
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		snapshot.UserID, snapshot.Period, snapshot.TotalLoadPercent,
		snapshot.TotalHours, snapshot.AvailableHours, snapshot.PerProject,
	).Scan(&snapshot.CreatedAt)
}

func (r *workloadRepository) Get(ctx context.Context, userID uuid.UUID, period string) (*domain.WorkloadSnapshot, error) {
	var snapshot domain.WorkloadSnapshot
	query := `SELECT * FROM workload_snapshots WHERE user_id = $1 AND period = $2`

	err := r.db.GetContext(ctx, &snapshot, query, userID, period)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *workloadRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.WorkloadSnapshot, int64, error) {
	params.Normalize()

	var total int64
	countQuery := `SELECT COUNT(*) FROM workload_snapshots WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	var snapshots []domain.WorkloadSnapshot
	query := `
		SELECT * FROM workload_snapshots
		WHERE user_id = $1
		ORDER BY period DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &snapshots, query, userID, params.PageSize, params.Offset())
	return snapshots, total, err
}

func (r *workloadRepository) ListByPeriod(ctx context.Context, period string) ([]domain.WorkloadSnapshot, error) {
	var snapshots []domain.WorkloadSnapshot
	query := `SELECT * FROM workload_snapshots WHERE period = $1`

	err := r.db.SelectContext(ctx, &snapshots, query, period)
	return snapshots, err
}
