package types

import (
	"time"

	"github.com/medusavr/moderation/internal/database/types/enum"
)

// Violation represents a single detected infraction. Rows are append-only:
// once written, only the moderator review fields may change.
type Violation struct {
	ID            string             `bun:",pk"              json:"id"`            // Unique violation ID
	UserID        string             `bun:",notnull"         json:"userId"`        // User who committed the violation
	Username      string             `bun:",nullzero"        json:"username"`      // Username at detection time, if known
	ViolationType enum.ViolationType `bun:",notnull"         json:"violationType"` // What kind of infraction was detected
	Severity      enum.Severity      `bun:",notnull"         json:"severity"`      // Severity tier assigned by the filter
	Content       string             `bun:",type:text"       json:"content"`       // Offending content (truncated)
	BlockedWords  []string           `bun:",type:jsonb"      json:"blockedWords"`  // Terms or patterns that matched
	Context       enum.Context       `bun:",notnull"         json:"context"`       // Where the violation happened
	Timestamp     time.Time          `bun:",notnull"         json:"timestamp"`     // When the violation was detected

	// Moderator review fields, amendable after creation.
	Resolved        bool        `bun:",notnull,default:false" json:"resolved"`
	ModeratorAction enum.Action `bun:",nullzero"              json:"moderatorAction,omitempty"`
	ModeratorNotes  string      `bun:",type:text,nullzero"    json:"moderatorNotes,omitempty"`
}

// SeverityBreakdown counts a user's violations per severity tier.
type SeverityBreakdown struct {
	Low      int `json:"low"`
	Medium   int `json:"medium"`
	High     int `json:"high"`
	Critical int `json:"critical"`
}

// UserViolationSummary is the per-user aggregate the auto-moderation policy
// evaluates. It is recomputed from the full violation history on every new
// violation, never incrementally patched.
type UserViolationSummary struct {
	UserID                string            `bun:",pk"         json:"userId"`
	Username              string            `bun:",nullzero"   json:"username"`
	TotalViolations       int               `bun:",notnull"    json:"totalViolations"`
	RecentViolations      int               `bun:",notnull"    json:"recentViolations"` // Violations in the last 7 days
	SeverityBreakdown     SeverityBreakdown `bun:",type:jsonb" json:"severityBreakdown"`
	LastViolation         *time.Time        `bun:",nullzero"   json:"lastViolation,omitempty"`
	Status                enum.UserStatus   `bun:",notnull"    json:"status"`
	BanExpiresAt          *time.Time        `bun:",nullzero"   json:"banExpiresAt,omitempty"`
	RestrictionsExpiresAt *time.Time        `bun:",nullzero"   json:"restrictionsExpiresAt,omitempty"`
	UpdatedAt             time.Time         `bun:",notnull"    json:"updatedAt"`
}

// Count returns the number of violations recorded for a severity tier.
func (b SeverityBreakdown) Count(severity enum.Severity) int {
	switch severity {
	case enum.SeverityLow:
		return b.Low
	case enum.SeverityMedium:
		return b.Medium
	case enum.SeverityHigh:
		return b.High
	case enum.SeverityCritical:
		return b.Critical
	default:
		return 0
	}
}

// Add increments the count for a severity tier.
func (b *SeverityBreakdown) Add(severity enum.Severity) {
	switch severity {
	case enum.SeverityLow:
		b.Low++
	case enum.SeverityMedium:
		b.Medium++
	case enum.SeverityHigh:
		b.High++
	case enum.SeverityCritical:
		b.Critical++
	}
}
