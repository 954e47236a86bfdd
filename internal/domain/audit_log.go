package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog records privileged actions: level assignments, engine sweeps,
// retention purges and welcome provisioning.
type AuditLog struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	UserName   *string         `json:"user_name,omitempty" db:"user_name"`
	Action     string          `json:"action" db:"action"`
	EntityType string          `json:"entity_type" db:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id" db:"entity_id"`
	Detail     json.RawMessage `json:"detail,omitempty" db:"detail"`
	IPAddress  *string         `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  *string         `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

const (
	AuditActionAssignLevel    = "ASSIGN_LEVEL"
	AuditActionDeadlineSweep  = "DEADLINE_SWEEP"
	AuditActionRetentionPurge = "RETENTION_PURGE"
	AuditActionWelcome        = "WELCOME"
)
