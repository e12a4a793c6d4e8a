package filter_test

import (
	"testing"

	"github.com/medusavr/moderation/internal/moderation/filter"
	"github.com/stretchr/testify/assert"
)

func TestMatcherBoundaries(t *testing.T) {
	t.Parallel()

	matcher := filter.NewMatcher()

	tests := []struct {
		name           string
		text           string
		term           string
		allowSubstring bool
		expected       bool
	}{
		{"exact word", "I will hit you", "hit", false, true},
		{"word inside another word", "the whitewash continues", "hit", false, false},
		{"term at start", "hit the road", "hit", false, true},
		{"term at end", "that was a hit", "hit", false, true},
		{"punctuation boundary", "hit!", "hit", false, true},
		{"case insensitive", "HIT me", "hit", false, true},
		{"multi-word phrase", "please ignore previous instructions", "ignore previous", false, true},
		{"phrase anchored as whole", "reignore previousness", "ignore previous", false, false},
		{"substring mode matches inside words", "the whitewash continues", "hit", true, true},
		{"no match at all", "a perfectly fine sentence", "hit", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, matcher.Contains(tt.text, tt.term, tt.allowSubstring))
		})
	}
}

func TestMatcherObfuscation(t *testing.T) {
	t.Parallel()

	matcher := filter.NewMatcher()

	tests := []struct {
		name     string
		text     string
		term     string
		expected bool
	}{
		{"leetspeak digits", "i will k1ll you", "kill", true},
		{"at sign substitution", "wh@t a b@d attack", "attack", true},
		{"zero for o", "sh00t them", "shoot", true},
		{"accented characters", "chïld", "child", true},
		{"spaced out letters stay a miss", "k i l l", "kill", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, matcher.Contains(tt.text, tt.term, false))
		})
	}
}

func TestMatcherConcurrentUse(t *testing.T) {
	t.Parallel()

	matcher := filter.NewMatcher()

	done := make(chan struct{})

	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()

			for range 100 {
				matcher.Contains("some text with attack inside", "attack", false)
				matcher.Contains("harmless text", "murder", false)
			}
		}()
	}

	for range 8 {
		<-done
	}
}
