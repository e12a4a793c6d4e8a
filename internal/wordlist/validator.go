package wordlist

import (
	"github.com/medusavr/moderation/internal/setup/config"
)

// ValidateWordlist performs all validation checks on the wordlist.
func ValidateWordlist(wordlist *config.Wordlist) []Issue {
	var issues []Issue

	if wordlist == nil || len(wordlist.Terms) == 0 {
		issues = append(issues, Issue{
			Type:        "empty_wordlist",
			Description: "Wordlist is empty or could not be loaded",
			Term:        "",
			Location:    -1,
		})

		return issues
	}

	validators := []Validator{
		NewDuplicateValidator(),
		NewFieldValidator(),
		NewSeverityValidator(),
	}

	for _, validator := range validators {
		issues = append(issues, validator.Validate(wordlist)...)
	}

	return issues
}
