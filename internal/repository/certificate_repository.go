package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gestion-talento/internal/domain"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *domain.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateRepository struct {
	db *sqlx.DB
}

func NewCertificateRepository(db *sqlx.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, cert *domain.Certificate) error {
	query := `
		INSERT INTO certificates (id, user_id, name, issuer, issued_at, expires_at, file_name, file_size, mime_type, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		cert.ID, cert.UserID, cert.Name, cert.Issuer, cert.IssuedAt, cert.ExpiresAt,
		cert.FileName, cert.FileSize, cert.MimeType, cert.StoragePath,
	).Scan(&cert.CreatedAt)
}

func (r *certificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Certificate, error) {
	var cert domain.Certificate
	query := `SELECT * FROM certificates WHERE id = $1`

	err := r.db.GetContext(ctx, &cert, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	query := `SELECT * FROM certificates WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &certs, query, userID)
	return certs, err
}

func (r *certificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM certificates WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
