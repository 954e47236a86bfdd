package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	FullName               string     `json:"full_name" db:"full_name"`
	AvatarURL              *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio                    *string    `json:"bio,omitempty" db:"bio"`
	AvailableHours         float64    `json:"available_hours" db:"available_hours"`
	IsActive               bool       `json:"is_active" db:"is_active"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt              *time.Time `json:"-" db:"deleted_at"`
}

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type UpdateUserInput struct {
	FullName       *string  `json:"full_name,omitempty" validate:"omitempty,min=2"`
	AvatarURL      **string `json:"avatar_url,omitempty"`
	Bio            **string `json:"bio,omitempty"`
	AvailableHours *float64 `json:"available_hours,omitempty" validate:"omitempty,gt=0"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// DefaultAvailableHours is the weekly capacity assumed for new accounts
// until HR sets a contract-specific value.
const DefaultAvailableHours = 40.0
