package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Active      bool       `json:"active" db:"active"`
	TotalHours  float64    `json:"total_hours" db:"total_hours"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type CreateProjectInput struct {
	Title       string     `json:"title" validate:"required,min=2"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	TotalHours  float64    `json:"total_hours" validate:"gte=0"`
}

type UpdateProjectInput struct {
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=2"`
	Description **string    `json:"description,omitempty"`
	Deadline    **time.Time `json:"deadline,omitempty"`
	Active      *bool       `json:"active,omitempty"`
	TotalHours  *float64    `json:"total_hours,omitempty" validate:"omitempty,gte=0"`
}

// Assignment is a user's committed weekly hours on a project. A nil
// EndDate means the assignment is ongoing.
type Assignment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	ProjectID    uuid.UUID  `json:"project_id" db:"project_id"`
	HoursPerWeek float64    `json:"hours_per_week" db:"hours_per_week"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// ActiveAt reports whether the assignment still consumes capacity at the
// given instant.
func (a Assignment) ActiveAt(t time.Time) bool {
	return a.EndDate == nil || a.EndDate.After(t)
}

type CreateAssignmentInput struct {
	UserID       uuid.UUID  `json:"user_id" validate:"required"`
	HoursPerWeek float64    `json:"hours_per_week" validate:"gt=0"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}
