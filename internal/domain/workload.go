package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type LoadClass string

const (
	LoadUnderload LoadClass = "underload"
	LoadNominal   LoadClass = "nominal"
	LoadOverload  LoadClass = "overload"
)

// Classification thresholds, inclusive lower bounds.
const (
	NominalThresholdPercent  = 50.0
	OverloadThresholdPercent = 80.0
)

// ClassifyLoad buckets a load percentage for display. The stored percent
// itself is never clamped; values over 100 signal overload explicitly.
func ClassifyLoad(percent float64) LoadClass {
	switch {
	case percent < NominalThresholdPercent:
		return LoadUnderload
	case percent < OverloadThresholdPercent:
		return LoadNominal
	default:
		return LoadOverload
	}
}

// LoadSummary is the outcome of a current-load computation.
type LoadSummary struct {
	TotalHours     float64   `json:"total_hours"`
	AvailableHours float64   `json:"available_hours"`
	Percent        float64   `json:"percent"`
	Class          LoadClass `json:"class"`
}

// ProjectHours is one entry of a snapshot's per-project breakdown.
type ProjectHours struct {
	ProjectID uuid.UUID `json:"project_id"`
	Hours     float64   `json:"hours"`
}

// WorkloadSnapshot is the immutable historical record of a user's load in
// one period. Exactly one row exists per (user, period); re-running the
// aggregation for a period overwrites the existing row.
type WorkloadSnapshot struct {
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	Period           string          `json:"period" db:"period"`
	TotalLoadPercent float64         `json:"total_load_percent" db:"total_load_percent"`
	TotalHours       float64         `json:"total_hours" db:"total_hours"`
	AvailableHours   float64         `json:"available_hours" db:"available_hours"`
	PerProject       json.RawMessage `json:"per_project" db:"per_project"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// Breakdown decodes the stored per-project list, preserving its order.
func (s *WorkloadSnapshot) Breakdown() ([]ProjectHours, error) {
	var out []ProjectHours
	if len(s.PerProject) == 0 {
		return out, nil
	}
	err := json.Unmarshal(s.PerProject, &out)
	return out, err
}

// PeriodOf returns the ISO-week period identifier for an instant,
// e.g. "2026-W35".
func PeriodOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
