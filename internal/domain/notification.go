package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Kind      NotificationKind `json:"kind" db:"kind"`
	DedupKey  *string          `json:"-" db:"dedup_key"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      json.RawMessage  `json:"data,omitempty" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationKind string

const (
	NotifDeadlineWarning NotificationKind = "DEADLINE_WARNING"
	NotifWelcome         NotificationKind = "WELCOME"
	NotifLevelChanged    NotificationKind = "LEVEL_CHANGED"
)

// DeadlineWarningKey identifies one logical deadline warning: a given
// user is warned at most once per project per urgency tier, no matter how
// many sweeps run.
func DeadlineWarningKey(userID, projectID uuid.UUID, tier int) string {
	return fmt.Sprintf("deadline-warning:%s:%s:t%d", userID, projectID, tier)
}

// WelcomeKey identifies the single welcome notification a user may ever
// receive, regardless of provisioning retries.
func WelcomeKey(userID uuid.UUID) string {
	return fmt.Sprintf("welcome:%s", userID)
}
