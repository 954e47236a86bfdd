package certificate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"gestion-talento/internal/config"
	"gestion-talento/internal/domain"
	"gestion-talento/internal/repository"
)

type Service interface {
	Upload(ctx context.Context, userID uuid.UUID, input domain.CreateCertificateInput, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Certificate, error)
	Get(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Certificate, error)
	Delete(ctx context.Context, userID, certID uuid.UUID) error
}

type service struct {
	certRepo    repository.CertificateRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(certRepo repository.CertificateRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		certRepo:    certRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, userID uuid.UUID, input domain.CreateCertificateInput, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Certificate, error) {
	certID := uuid.New()
	storagePath := fmt.Sprintf("certificates/%s/%s", userID, certID)

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("store certificate file: %w", err)
	}

	cert := &domain.Certificate{
		ID:          certID,
		UserID:      userID,
		Name:        input.Name,
		Issuer:      input.Issuer,
		IssuedAt:    input.IssuedAt,
		ExpiresAt:   input.ExpiresAt,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
	}

	if err := s.certRepo.Create(ctx, cert); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	cert.URL, _ = s.presign(ctx, storagePath)
	return cert, nil
}

func (s *service) Get(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error) {
	cert, err := s.certRepo.GetByID(ctx, certID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, fmt.Errorf("certificate %s: %w", certID, domain.ErrNotFound)
	}
	if cert.UserID != userID {
		return nil, fmt.Errorf("certificate %s belongs to another user: %w", certID, domain.ErrForbidden)
	}

	cert.URL, _ = s.presign(ctx, cert.StoragePath)
	return cert, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Certificate, error) {
	certs, err := s.certRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range certs {
		certs[i].URL, _ = s.presign(ctx, certs[i].StoragePath)
	}
	return certs, nil
}

func (s *service) Delete(ctx context.Context, userID, certID uuid.UUID) error {
	cert, err := s.certRepo.GetByID(ctx, certID)
	if err != nil {
		return err
	}
	if cert == nil {
		return fmt.Errorf("certificate %s: %w", certID, domain.ErrNotFound)
	}
	if cert.UserID != userID {
		return fmt.Errorf("certificate %s belongs to another user: %w", certID, domain.ErrForbidden)
	}

	if err := s.certRepo.Delete(ctx, certID); err != nil {
		return err
	}
	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, cert.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

// presign issues a short-lived download URL; the bucket itself is
// private.
func (s *service) presign(ctx context.Context, storagePath string) (string, error) {
	ttl := s.cfg.MinIODocumentTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	u, err := s.minioClient.PresignedGetObject(ctx, s.cfg.MinIOBucket, storagePath, ttl, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
