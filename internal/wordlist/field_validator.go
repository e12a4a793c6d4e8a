package wordlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/medusavr/moderation/internal/setup/config"
)

// FieldValidator handles required field and category validation.
type FieldValidator struct{}

// NewFieldValidator creates a new FieldValidator instance.
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{}
}

// Validate performs required field and category validation.
func (v *FieldValidator) Validate(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	validCategories := config.Categories()

	for i, entry := range wordlist.Terms {
		if strings.TrimSpace(entry.Term) == "" {
			issues = append(issues, Issue{
				Type:        "empty_required_field",
				Description: fmt.Sprintf("Entry at position %d has empty term", i),
				Term:        "",
				Location:    i,
			})

			continue
		}

		if entry.Term != strings.ToLower(entry.Term) {
			issues = append(issues, Issue{
				Type:        "uppercase_term",
				Description: fmt.Sprintf("Term '%s' must be lowercase; matching normalizes input to lowercase", entry.Term),
				Term:        entry.Term,
				Location:    i,
			})
		}

		if !slices.Contains(validCategories, entry.Category) {
			issues = append(issues, Issue{
				Type: "invalid_category",
				Description: fmt.Sprintf("Term '%s' has invalid category '%s' (must be: %s)",
					entry.Term, entry.Category, strings.Join(validCategories, ", ")),
				Term:     entry.Term,
				Location: i,
			})
		}
	}

	return issues
}
