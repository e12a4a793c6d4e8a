package wordlist

import (
	"fmt"
	"strings"

	"github.com/medusavr/moderation/internal/setup/config"
)

// SeverityValidator checks the severity override lists against the term set.
type SeverityValidator struct{}

// NewSeverityValidator creates a new SeverityValidator instance.
func NewSeverityValidator() *SeverityValidator {
	return &SeverityValidator{}
}

// Validate checks that every severity override phrase can actually match a
// term, and that no phrase sits in more than one list. An override phrase
// that no term contains is dead configuration.
func (v *SeverityValidator) Validate(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	lists := []struct {
		name    string
		phrases []string
	}{
		{"critical", wordlist.Critical},
		{"high", wordlist.High},
		{"reprogramming", wordlist.Reprogramming},
	}

	seen := make(map[string]string)

	for _, list := range lists {
		for i, phrase := range list.phrases {
			if strings.TrimSpace(phrase) == "" {
				issues = append(issues, Issue{
					Type:        "empty_severity_phrase",
					Description: fmt.Sprintf("Severity list '%s' has an empty phrase at position %d", list.name, i),
					Term:        "",
					Location:    i,
				})

				continue
			}

			if prev, exists := seen[phrase]; exists && prev != list.name {
				issues = append(issues, Issue{
					Type: "conflicting_severity",
					Description: fmt.Sprintf("Phrase '%s' appears in both '%s' and '%s' severity lists",
						phrase, prev, list.name),
					Term:     phrase,
					Location: i,
				})
			}

			seen[phrase] = list.name

			if !v.matchesAnyTerm(wordlist, phrase) {
				issues = append(issues, Issue{
					Type: "unreachable_severity_phrase",
					Description: fmt.Sprintf("Severity phrase '%s' in list '%s' is not contained in any term",
						phrase, list.name),
					Term:     phrase,
					Location: i,
				})
			}
		}
	}

	return issues
}

// matchesAnyTerm reports whether any wordlist term contains the phrase,
// mirroring how severity overrides are matched at runtime.
func (v *SeverityValidator) matchesAnyTerm(wordlist *config.Wordlist, phrase string) bool {
	for _, entry := range wordlist.Terms {
		if strings.Contains(entry.Term, phrase) {
			return true
		}
	}

	return false
}
