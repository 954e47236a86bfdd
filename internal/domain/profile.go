package domain

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Issuer      *string    `json:"issuer,omitempty" db:"issuer"`
	IssuedAt    *time.Time `json:"issued_at,omitempty" db:"issued_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	FileName    string     `json:"file_name" db:"file_name"`
	FileSize    int64      `json:"file_size" db:"file_size"`
	MimeType    string     `json:"mime_type" db:"mime_type"`
	StoragePath string     `json:"-" db:"storage_path"`
	URL         string     `json:"url,omitempty" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

type CreateCertificateInput struct {
	Name      string     `json:"name" validate:"required,min=2"`
	Issuer    *string    `json:"issuer,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Skill struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Proficiency int       `json:"proficiency" db:"proficiency"`
	Years       float64   `json:"years" db:"years"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type SkillInput struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Proficiency int     `json:"proficiency" validate:"min=1,max=5"`
	Years       float64 `json:"years" validate:"gte=0"`
}

type ExperienceEntry struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Company   string     `json:"company" db:"company"`
	Title     string     `json:"title" db:"title"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
	Summary   *string    `json:"summary,omitempty" db:"summary"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

type ExperienceInput struct {
	Company   string     `json:"company" validate:"required,min=1"`
	Title     string     `json:"title" validate:"required,min=1"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Summary   *string    `json:"summary,omitempty"`
}
