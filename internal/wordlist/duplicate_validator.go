package wordlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medusavr/moderation/internal/setup/config"
)

// DuplicateValidator handles exact duplicate and substring redundancy validation.
type DuplicateValidator struct{}

// NewDuplicateValidator creates a new DuplicateValidator instance.
func NewDuplicateValidator() *DuplicateValidator {
	return &DuplicateValidator{}
}

// Validate performs duplicate and substring redundancy validation.
func (v *DuplicateValidator) Validate(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	issues = append(issues, v.checkExactDuplicates(wordlist)...)
	issues = append(issues, v.checkSubstringRedundancy(wordlist)...)

	return issues
}

// checkExactDuplicates finds exact duplicate terms.
func (v *DuplicateValidator) checkExactDuplicates(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	seen := make(map[string]int)

	for i, entry := range wordlist.Terms {
		if prevIndex, exists := seen[entry.Term]; exists {
			issues = append(issues, Issue{
				Type:        "exact_duplicate",
				Description: fmt.Sprintf("Term '%s' appears multiple times (positions %d and %d)", entry.Term, prevIndex, i),
				Term:        entry.Term,
				Location:    i,
			})
		} else {
			seen[entry.Term] = i
		}
	}

	return issues
}

// checkSubstringRedundancy finds boundary-matched terms that are redundant
// because they appear as complete words inside longer terms. Terms with
// AllowSubstring set are skipped: substring matching changes their reach, so
// overlap with a longer phrase is intentional.
func (v *DuplicateValidator) checkSubstringRedundancy(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	type indexedEntry struct {
		entry config.TermEntry
		index int
	}

	entries := make([]indexedEntry, 0, len(wordlist.Terms))

	for i, entry := range wordlist.Terms {
		if entry.AllowSubstring {
			continue
		}

		entries = append(entries, indexedEntry{entry, i})
	}

	sort.Slice(entries, func(i, j int) bool {
		return len(entries[i].entry.Term) < len(entries[j].entry.Term)
	})

	for i, entry1 := range entries {
		for j := i + 1; j < len(entries); j++ {
			entry2 := entries[j]
			if v.isCompleteWordSubstring(entry1.entry.Term, entry2.entry.Term) {
				issues = append(issues, Issue{
					Type: "substring_redundancy",
					Description: fmt.Sprintf("Term '%s' is redundant because it appears as a complete word in '%s'",
						entry1.entry.Term, entry2.entry.Term),
					Term:     entry1.entry.Term,
					Location: entry1.index,
				})

				break
			}
		}
	}

	return issues
}

// isCompleteWordSubstring checks if the shorter term appears as a complete word in the longer term.
func (v *DuplicateValidator) isCompleteWordSubstring(short, long string) bool {
	shortLower := strings.ToLower(short)
	longLower := strings.ToLower(long)

	words := strings.FieldsFunc(longLower, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	for _, word := range words {
		if word == shortLower {
			return true
		}
	}

	return false
}
