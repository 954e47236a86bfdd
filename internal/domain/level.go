package domain

import (
	"time"

	"github.com/google/uuid"
)

// Level is the ordinal role tag of a user. The ordinals are flat role
// identifiers, not a privilege hierarchy: a project manager (4) does not
// hold admin (1) capability.
type Level int

const (
	LevelEmployee       Level = 0
	LevelAdmin          Level = 1
	LevelPeopleLead     Level = 2
	LevelProjectLead    Level = 3
	LevelProjectManager Level = 4
)

type Capability string

const (
	CapabilityAdmin          Capability = "admin"
	CapabilityPeopleLead     Capability = "people-lead"
	CapabilityProjectLead    Capability = "project-lead"
	CapabilityProjectManager Capability = "project-manager"
)

var capabilityLevels = map[Capability]Level{
	CapabilityAdmin:          LevelAdmin,
	CapabilityPeopleLead:     LevelPeopleLead,
	CapabilityProjectLead:    LevelProjectLead,
	CapabilityProjectManager: LevelProjectManager,
}

// Has reports whether the level grants the capability. Comparison is by
// exact ordinal; there is no escalation across ordinals.
func (l Level) Has(c Capability) bool {
	required, ok := capabilityLevels[c]
	return ok && l == required
}

func (l Level) IsValid() bool {
	return l >= LevelEmployee && l <= LevelProjectManager
}

func (l Level) String() string {
	switch l {
	case LevelEmployee:
		return "employee"
	case LevelAdmin:
		return "admin"
	case LevelPeopleLead:
		return "people-lead"
	case LevelProjectLead:
		return "project-lead"
	case LevelProjectManager:
		return "project-manager"
	default:
		return "unknown"
	}
}

// LevelChange is one append-only entry in a user's level history. The
// current level of a user is the entry with the latest ChangedAt; entries
// sharing a timestamp are tie-broken by Seq, so the last inserted wins.
type LevelChange struct {
	Seq       int64     `json:"-" db:"seq"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Level     Level     `json:"level" db:"level"`
	ChangedBy uuid.UUID `json:"changed_by" db:"changed_by"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at"`
}

type AssignLevelInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Level  Level     `json:"level" validate:"min=0,max=4"`
}
