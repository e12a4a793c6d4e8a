package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medusavr/moderation/internal/database/types/enum"
	"github.com/medusavr/moderation/internal/setup/config"
	"go.uber.org/zap"
)

// ModerationResult is the outcome of checking user-submitted text against the
// restricted-term wordlist. A violation is an expected outcome, not an error.
type ModerationResult struct {
	IsAllowed    bool          `json:"isAllowed"`
	BlockedTerms []string      `json:"blockedWords"`
	Severity     enum.Severity `json:"severity"`
	ShouldBan    bool          `json:"shouldBan"`
	ShouldWarn   bool          `json:"shouldWarn"`
	Message      string        `json:"message,omitempty"`
}

// ContentFilter classifies arbitrary user-submitted text into allowed/blocked
// with a severity tier. It is a pure function over the immutable wordlist and
// safe for concurrent use.
type ContentFilter struct {
	wordlist *config.Wordlist
	matcher  *Matcher
	logger   *zap.Logger
}

// NewContentFilter creates a new ContentFilter over the given wordlist.
func NewContentFilter(wordlist *config.Wordlist, logger *zap.Logger) *ContentFilter {
	return &ContentFilter{
		wordlist: wordlist,
		matcher:  NewMatcher(),
		logger:   logger.Named("content_filter"),
	}
}

// ModerateContent checks text against the restricted-term list and classifies
// the result. Empty input is always allowed.
func (f *ContentFilter) ModerateContent(text string) *ModerationResult {
	var blockedTerms []string

	if text != "" {
		for _, entry := range f.wordlist.Terms {
			if f.matcher.Contains(text, entry.Term, entry.AllowSubstring) {
				blockedTerms = append(blockedTerms, entry.Term)
			}
		}
	}

	if len(blockedTerms) == 0 {
		return &ModerationResult{
			IsAllowed: true,
			Severity:  enum.SeverityLow,
		}
	}

	severity := f.violationSeverity(blockedTerms)
	result := &ModerationResult{
		IsAllowed:    false,
		BlockedTerms: blockedTerms,
		Severity:     severity,
		ShouldBan:    severity == enum.SeverityCritical,
		ShouldWarn:   severity == enum.SeverityHigh || severity == enum.SeverityMedium,
		Message:      violationMessage(severity, blockedTerms),
	}

	f.logger.Info("Content blocked",
		zap.String("severity", severity.String()),
		zap.Strings("blockedTerms", blockedTerms))

	return result
}

// CheckMultipleContent applies ModerateContent to each named field of a single
// logical submission, unions the blocked terms and takes the maximum severity.
// Fields of a character form must be checked atomically so a violation in any
// one of them rejects the whole submission.
func (f *ContentFilter) CheckMultipleContent(fields map[string]string) *ModerationResult {
	// Deterministic field order so blocked terms come out stable
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	var (
		blockedTerms []string
		seen         = make(map[string]struct{})
		severity     = enum.SeverityLow
		hasViolation bool
	)

	for _, name := range names {
		result := f.ModerateContent(fields[name])
		if result.IsAllowed {
			continue
		}

		hasViolation = true

		for _, term := range result.BlockedTerms {
			if _, exists := seen[term]; !exists {
				blockedTerms = append(blockedTerms, term)
				seen[term] = struct{}{}
			}
		}

		if result.Severity > severity {
			severity = result.Severity
		}
	}

	if !hasViolation {
		return &ModerationResult{
			IsAllowed: true,
			Severity:  enum.SeverityLow,
		}
	}

	return &ModerationResult{
		IsAllowed:    false,
		BlockedTerms: blockedTerms,
		Severity:     severity,
		ShouldBan:    severity == enum.SeverityCritical,
		ShouldWarn:   severity == enum.SeverityHigh || severity == enum.SeverityMedium,
		Message:      fmt.Sprintf("Content contains restricted words: %s. Please remove these words and try again.", strings.Join(blockedTerms, ", ")),
	}
}

// violationSeverity classifies blocked terms against the override lists,
// in priority order critical > high > medium. Override entries match as
// substrings of the blocked term, so "children" hits the "child" entry.
func (f *ContentFilter) violationSeverity(blockedTerms []string) enum.Severity {
	for _, term := range blockedTerms {
		if containsAny(term, f.wordlist.Critical) {
			return enum.SeverityCritical
		}
	}

	for _, term := range blockedTerms {
		if containsAny(term, f.wordlist.High) || containsAny(term, f.wordlist.Reprogramming) {
			return enum.SeverityHigh
		}
	}

	return enum.SeverityMedium
}

// containsAny reports whether term contains any of the candidates, case-insensitively.
func containsAny(term string, candidates []string) bool {
	lowered := strings.ToLower(term)
	for _, candidate := range candidates {
		if strings.Contains(lowered, strings.ToLower(candidate)) {
			return true
		}
	}

	return false
}

// violationMessage returns the user-facing explanation for a blocked submission.
func violationMessage(severity enum.Severity, blockedTerms []string) string {
	joined := strings.Join(blockedTerms, ", ")

	switch severity {
	case enum.SeverityCritical:
		return fmt.Sprintf("CRITICAL VIOLATION: Account will be immediately banned for attempting to use prohibited content: %s. This type of content is strictly forbidden.", joined)
	case enum.SeverityHigh:
		return fmt.Sprintf("SEVERE VIOLATION: Account flagged for attempting to use highly inappropriate content: %s. Continued violations will result in account termination.", joined)
	case enum.SeverityMedium:
		return fmt.Sprintf("Content violation detected: %s. Please remove these words and try again. Repeated violations may result in account restrictions.", joined)
	case enum.SeverityLow:
		fallthrough
	default:
		return fmt.Sprintf("Content contains restricted words: %s. Please remove these words and try again.", joined)
	}
}
