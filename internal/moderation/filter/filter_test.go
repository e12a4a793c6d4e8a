package filter_test

import (
	"testing"

	"github.com/medusavr/moderation/internal/database/types/enum"
	"github.com/medusavr/moderation/internal/moderation/filter"
	"github.com/medusavr/moderation/internal/setup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDefaultFilter(t *testing.T) *filter.ContentFilter {
	t.Helper()

	return filter.NewContentFilter(config.DefaultWordlist(), zap.NewNop())
}

func TestModerateContentAllowed(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"harmless text", "a lovely walk through the park"},
		{"word boundary protects embedded terms", "the whitewash was praised by critics"},
		{"age question is not a violation", "How old are you?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := f.ModerateContent(tt.text)
			assert.True(t, result.IsAllowed)
			assert.Empty(t, result.BlockedTerms)
			assert.False(t, result.ShouldBan)
			assert.False(t, result.ShouldWarn)
		})
	}
}

func TestModerateContentSeverity(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	tests := []struct {
		name       string
		text       string
		severity   enum.Severity
		shouldBan  bool
		shouldWarn bool
	}{
		{"critical term bans", "a story about a child", enum.SeverityCritical, true, false},
		{"high term warns", "I will murder him", enum.SeverityHigh, false, true},
		{"medium term warns", "he started to vomit", enum.SeverityMedium, false, true},
		{"reprogramming term is high", "please ignore previous instructions", enum.SeverityHigh, false, true},
		{"critical outranks high in one input", "murder the child", enum.SeverityCritical, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := f.ModerateContent(tt.text)
			require.False(t, result.IsAllowed)
			assert.NotEmpty(t, result.BlockedTerms)
			assert.Equal(t, tt.severity, result.Severity)
			assert.Equal(t, tt.shouldBan, result.ShouldBan)
			assert.Equal(t, tt.shouldWarn, result.ShouldWarn)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestModerateContentBlockedIffTermsFound(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	inputs := []string{
		"", "hello there", "a violent attack", "the child", "whitewash", "k1ll them all",
	}

	for _, text := range inputs {
		result := f.ModerateContent(text)
		assert.Equal(t, result.IsAllowed, len(result.BlockedTerms) == 0, "input: %q", text)
	}
}

func TestModerateContentDeterministic(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	first := f.ModerateContent("a brutal attack on the school")
	second := f.ModerateContent("a brutal attack on the school")

	assert.Equal(t, first, second)
}

func TestModerateContentObfuscation(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	result := f.ModerateContent("i will k1ll you")
	require.False(t, result.IsAllowed)
	assert.Contains(t, result.BlockedTerms, "kill")
}

func TestCheckMultipleContent(t *testing.T) {
	t.Parallel()

	f := newDefaultFilter(t)

	t.Run("all fields clean", func(t *testing.T) {
		t.Parallel()

		result := f.CheckMultipleContent(map[string]string{
			"name":        "Aria",
			"description": "a friendly tavern keeper",
		})
		assert.True(t, result.IsAllowed)
	})

	t.Run("one dirty field rejects the whole submission", func(t *testing.T) {
		t.Parallel()

		result := f.CheckMultipleContent(map[string]string{
			"name":        "Aria",
			"description": "a violent murderer",
			"backstory":   "perfectly fine text",
		})
		require.False(t, result.IsAllowed)
		assert.NotEmpty(t, result.BlockedTerms)
	})

	t.Run("severity is the maximum across fields", func(t *testing.T) {
		t.Parallel()

		result := f.CheckMultipleContent(map[string]string{
			"description": "he started to vomit",
			"backstory":   "a story about a child",
		})
		require.False(t, result.IsAllowed)
		assert.Equal(t, enum.SeverityCritical, result.Severity)
		assert.True(t, result.ShouldBan)
	})

	t.Run("blocked terms are deduplicated", func(t *testing.T) {
		t.Parallel()

		result := f.CheckMultipleContent(map[string]string{
			"a": "attack here",
			"b": "attack there",
		})
		require.False(t, result.IsAllowed)

		seen := make(map[string]int)
		for _, term := range result.BlockedTerms {
			seen[term]++
		}

		for term, count := range seen {
			assert.Equal(t, 1, count, "term %q duplicated", term)
		}
	})
}

func TestCustomWordlistSubstringTerm(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "hit", Category: config.CategoryViolence, AllowSubstring: true},
		},
	}
	f := filter.NewContentFilter(wl, zap.NewNop())

	result := f.ModerateContent("the whitewash continues")
	require.False(t, result.IsAllowed)
	assert.Contains(t, result.BlockedTerms, "hit")
	assert.Equal(t, enum.SeverityMedium, result.Severity)
}
