// Package tracker records violations, maintains per-user summaries, and
// applies the automatic escalation policy.
package tracker

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/medusavr/moderation/internal/database/types"
	"github.com/medusavr/moderation/internal/database/types/enum"
	"github.com/medusavr/moderation/internal/events"
	"github.com/medusavr/moderation/internal/setup/config"
	"github.com/medusavr/moderation/pkg/utils"
	"go.uber.org/zap"
)

const (
	// RecentWindow bounds the sliding window used for the recent-violation
	// escalation rules.
	RecentWindow = 7 * 24 * time.Hour

	// lockStripes is the number of mutexes user IDs are hashed across.
	lockStripes = 64
)

// Escalation durations. A ban decision with no duration is permanent.
const (
	SuspendHighDuration    = 168 * time.Hour
	SuspendMediumDuration  = 72 * time.Hour
	RestrictDuration       = 24 * time.Hour
	RestrictRecentDuration = 12 * time.Hour
)

// Decision is the outcome of evaluating the escalation policy for a user.
type Decision struct {
	Action   enum.Action
	Reason   string
	Duration time.Duration // Zero for permanent bans and warnings
}

// Permanent reports whether the decision is a permanent ban.
func (d Decision) Permanent() bool {
	return d.Action == enum.ActionBan && d.Duration == 0
}

// RestrictionState describes whether and why a user is currently blocked
// from the platform.
type RestrictionState struct {
	Restricted bool
	Status     enum.UserStatus
	Reason     string
	ExpiresAt  *time.Time // Nil for permanent bans
}

// Tracker serializes violation logging per user and applies the automatic
// escalation policy over the recomputed summary.
type Tracker struct {
	store     Store
	publisher *events.Publisher
	config    *config.Moderation
	logger    *zap.Logger
	locks     [lockStripes]sync.Mutex
}

// New creates a violation tracker. The publisher may be nil when deletion
// events are disabled.
func New(store Store, publisher *events.Publisher, config *config.Moderation, logger *zap.Logger) *Tracker {
	return &Tracker{
		store:     store,
		publisher: publisher,
		config:    config,
		logger:    logger.Named("violation_tracker"),
	}
}

// ViolationInput carries the detection details for a new violation.
type ViolationInput struct {
	UserID        string
	Username      string
	ViolationType enum.ViolationType
	Severity      enum.Severity
	Content       string
	BlockedWords  []string
	Context       enum.Context
}

// LogViolation appends a violation to the user's ledger, recomputes their
// summary from the full history, and returns the escalation decision.
// Persistence failures are logged but do not block enforcement: the decision
// is still computed from whatever history is available.
func (t *Tracker) LogViolation(ctx context.Context, input *ViolationInput) (*types.Violation, Decision) {
	maxLen := t.config.MaxContentLength
	if maxLen <= 0 {
		maxLen = 500
	}

	now := time.Now().UTC()
	violation := &types.Violation{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		Username:      input.Username,
		ViolationType: input.ViolationType,
		Severity:      input.Severity,
		Content:       utils.TruncateString(input.Content, maxLen),
		BlockedWords:  input.BlockedWords,
		Context:       input.Context,
		Timestamp:     now,
	}

	lock := t.userLock(input.UserID)
	lock.Lock()
	defer lock.Unlock()

	saved := true
	if err := t.store.SaveViolation(ctx, violation); err != nil {
		saved = false

		t.logger.Error("Failed to persist violation",
			zap.String("userId", input.UserID),
			zap.String("violationId", violation.ID),
			zap.Error(err))
	}

	history, err := t.store.GetUserViolations(ctx, input.UserID)
	if err != nil {
		t.logger.Error("Failed to load violation history",
			zap.String("userId", input.UserID),
			zap.Error(err))

		history = nil
	}

	if !saved || err != nil {
		// Make sure the new violation is counted even when the store is down.
		if !containsViolation(history, violation.ID) {
			history = append(history, violation)
		}
	}

	summary := t.buildSummary(input.UserID, input.Username, history, now)
	decision := t.ShouldRestrictUser(summary)
	t.applyDecision(summary, decision, now)

	if err := t.store.SaveSummary(ctx, summary); err != nil {
		t.logger.Error("Failed to persist violation summary",
			zap.String("userId", input.UserID),
			zap.Error(err))
	}

	t.logger.Info("Violation logged",
		zap.String("userId", input.UserID),
		zap.String("violationId", violation.ID),
		zap.String("severity", input.Severity.String()),
		zap.String("action", decision.Action.String()),
		zap.Int("totalViolations", summary.TotalViolations))

	if decision.Permanent() {
		t.dispatchDeletionEvent(input.UserID, decision.Reason)
	}

	return violation, decision
}

// IsUserRestricted reports whether the user is currently blocked. Expired
// suspensions and restrictions no longer count. Store failures fail open so
// a degraded database never locks out legitimate users.
func (t *Tracker) IsUserRestricted(ctx context.Context, userID string) RestrictionState {
	summary, err := t.store.GetSummary(ctx, userID)
	if err != nil {
		t.logger.Error("Failed to load violation summary, allowing user",
			zap.String("userId", userID),
			zap.Error(err))

		return RestrictionState{Status: enum.UserStatusActive}
	}

	if summary == nil {
		return RestrictionState{Status: enum.UserStatusActive}
	}

	now := time.Now().UTC()

	switch summary.Status {
	case enum.UserStatusBanned:
		if summary.BanExpiresAt == nil {
			return RestrictionState{
				Restricted: true,
				Status:     enum.UserStatusBanned,
				Reason:     "Account permanently banned for policy violations",
			}
		}

		if summary.BanExpiresAt.After(now) {
			return RestrictionState{
				Restricted: true,
				Status:     enum.UserStatusBanned,
				Reason:     "Account banned for policy violations",
				ExpiresAt:  summary.BanExpiresAt,
			}
		}
	case enum.UserStatusSuspended:
		// A missing expiry means the suspension holds until a moderator
		// clears it, not that it lapsed.
		if summary.BanExpiresAt == nil || summary.BanExpiresAt.After(now) {
			return RestrictionState{
				Restricted: true,
				Status:     enum.UserStatusSuspended,
				Reason:     "Account suspended for repeated violations",
				ExpiresAt:  summary.BanExpiresAt,
			}
		}
	case enum.UserStatusRestricted:
		if summary.RestrictionsExpiresAt == nil || summary.RestrictionsExpiresAt.After(now) {
			return RestrictionState{
				Restricted: true,
				Status:     enum.UserStatusRestricted,
				Reason:     "Account temporarily restricted",
				ExpiresAt:  summary.RestrictionsExpiresAt,
			}
		}
	case enum.UserStatusActive, enum.UserStatusWarned:
	}

	return RestrictionState{Status: summary.Status}
}

// GetUserSummary returns the stored summary for a user, or nil if they have
// no violations.
func (t *Tracker) GetUserSummary(ctx context.Context, userID string) (*types.UserViolationSummary, error) {
	return t.store.GetSummary(ctx, userID)
}

// buildSummary recomputes the aggregate from the full violation history.
func (t *Tracker) buildSummary(
	userID, username string, history []*types.Violation, now time.Time,
) *types.UserViolationSummary {
	summary := &types.UserViolationSummary{
		UserID:    userID,
		Username:  username,
		UpdatedAt: now,
	}

	cutoff := now.Add(-RecentWindow)

	for _, v := range history {
		summary.TotalViolations++
		summary.SeverityBreakdown.Add(v.Severity)

		if v.Timestamp.After(cutoff) {
			summary.RecentViolations++
		}

		if summary.LastViolation == nil || v.Timestamp.After(*summary.LastViolation) {
			ts := v.Timestamp
			summary.LastViolation = &ts
		}
	}

	summary.Status = CalculateUserStatus(summary.SeverityBreakdown, summary.RecentViolations)

	return summary
}

// ShouldRestrictUser applies the escalation rules to a summary in priority
// order and returns the first match.
func (t *Tracker) ShouldRestrictUser(summary *types.UserViolationSummary) Decision {
	breakdown := summary.SeverityBreakdown

	switch {
	case breakdown.Critical >= 1:
		return Decision{Action: enum.ActionBan, Reason: "Critical content violation"}
	case breakdown.High >= 3:
		return Decision{Action: enum.ActionBan, Reason: "Repeated high-severity violations"}
	case breakdown.High >= 1:
		return Decision{Action: enum.ActionSuspend, Reason: "High-severity content violation", Duration: SuspendHighDuration}
	case breakdown.Medium >= 5:
		return Decision{Action: enum.ActionSuspend, Reason: "Persistent content violations", Duration: SuspendMediumDuration}
	case breakdown.Medium >= 3:
		return Decision{Action: enum.ActionRestrict, Reason: "Multiple content violations", Duration: RestrictDuration}
	case summary.RecentViolations >= 10:
		return Decision{Action: enum.ActionRestrict, Reason: "Excessive recent violations", Duration: RestrictRecentDuration}
	case summary.TotalViolations >= 5:
		return Decision{Action: enum.ActionWarn, Reason: "Accumulated content violations"}
	default:
		return Decision{Action: enum.ActionNone}
	}
}

// applyDecision stamps the enforcement state and expiries onto the summary.
func (t *Tracker) applyDecision(summary *types.UserViolationSummary, decision Decision, now time.Time) {
	if decision.Action == enum.ActionNone {
		return
	}

	summary.Status = decision.Action.Status()

	switch decision.Action {
	case enum.ActionBan:
		if decision.Duration > 0 {
			expiry := now.Add(decision.Duration)
			summary.BanExpiresAt = &expiry
		}
	case enum.ActionSuspend:
		expiry := now.Add(decision.Duration)
		summary.BanExpiresAt = &expiry
	case enum.ActionRestrict:
		expiry := now.Add(decision.Duration)
		summary.RestrictionsExpiresAt = &expiry
	case enum.ActionNone, enum.ActionWarn:
	}
}

// dispatchDeletionEvent notifies downstream services of a permanent ban so
// the user's stored content gets purged. Publishing happens off the request
// path and failures are only logged.
func (t *Tracker) dispatchDeletionEvent(userID, reason string) {
	if t.publisher == nil || !t.config.PublishDeletionEvents {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := t.publisher.PublishPermanentBan(ctx, userID, reason); err != nil {
			t.logger.Error("Failed to publish permanent ban event",
				zap.String("userId", userID),
				zap.Error(err))
		}
	}()
}

func (t *Tracker) userLock(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))

	return &t.locks[h.Sum32()%lockStripes]
}

// CalculateUserStatus derives the standing tier from violation counts alone,
// without consulting expiry timestamps.
func CalculateUserStatus(breakdown types.SeverityBreakdown, recentViolations int) enum.UserStatus {
	switch {
	case breakdown.Critical > 0 || breakdown.High >= 3:
		return enum.UserStatusBanned
	case breakdown.High >= 1 || breakdown.Medium >= 5:
		return enum.UserStatusSuspended
	case breakdown.Medium >= 3 || recentViolations >= 10:
		return enum.UserStatusRestricted
	case breakdown.Medium >= 1 || recentViolations >= 5:
		return enum.UserStatusWarned
	default:
		return enum.UserStatusActive
	}
}

func containsViolation(history []*types.Violation, id string) bool {
	for _, v := range history {
		if v.ID == id {
			return true
		}
	}

	return false
}
