package filter

import (
	"regexp"
	"strings"
	"sync"

	"github.com/medusavr/moderation/pkg/utils"
)

// Matcher performs boundary-anchored, case-insensitive term matching.
// Matching is exact after normalization: no stemming or fuzzy logic, so
// spaced-out or obfuscated spellings beyond the fixed substitution table
// are a known gap.
type Matcher struct {
	normalizer *utils.TextNormalizer
	regexCache map[string]*regexp.Regexp
	mu         sync.RWMutex
	normMu     sync.Mutex // The normalizer transformer is not safe for concurrent use
}

// NewMatcher creates a new Matcher instance.
func NewMatcher() *Matcher {
	return &Matcher{
		normalizer: utils.NewTextNormalizer(),
		regexCache: make(map[string]*regexp.Regexp),
	}
}

// Contains checks if text contains the term, anchored at word boundaries
// unless allowSubstring is set. Multi-word phrases are anchored as a whole.
func (m *Matcher) Contains(text, term string, allowSubstring bool) bool {
	normalizedText := m.applyCharacterSubstitutions(text)
	normalizedTerm := m.applyCharacterSubstitutions(term)

	if allowSubstring {
		return strings.Contains(strings.ToLower(normalizedText), strings.ToLower(normalizedTerm))
	}

	regex := m.getCompiledRegex(normalizedTerm)

	return regex.MatchString(normalizedText)
}

// getCompiledRegex gets or compiles a boundary-anchored regex for the term with caching.
func (m *Matcher) getCompiledRegex(normalizedTerm string) *regexp.Regexp {
	m.mu.RLock()

	if cached, exists := m.regexCache[normalizedTerm]; exists {
		m.mu.RUnlock()
		return cached
	}

	m.mu.RUnlock()

	pattern := `(?:^|[^a-zA-Z0-9])` + regexp.QuoteMeta(normalizedTerm) + `(?:[^a-zA-Z0-9]|$)`
	regex := regexp.MustCompile("(?i)" + pattern)

	m.mu.Lock()
	m.regexCache[normalizedTerm] = regex
	m.mu.Unlock()

	return regex
}

// applyCharacterSubstitutions applies character substitutions for obfuscation detection.
func (m *Matcher) applyCharacterSubstitutions(text string) string {
	m.normMu.Lock()
	normalized := m.normalizer.Normalize(text)
	m.normMu.Unlock()

	if normalized == "" {
		normalized = strings.ToLower(text)
	}

	// Common leetspeak substitutions; anything beyond this table is accepted
	// as a miss rather than guessed at.
	replacements := map[string]string{
		"@": "a",
		"3": "e",
		"0": "o",
		"1": "i",
	}

	for old, sub := range replacements {
		normalized = strings.ReplaceAll(normalized, old, sub)
	}

	return normalized
}
