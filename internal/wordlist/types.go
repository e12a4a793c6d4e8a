// Package wordlist validates the restricted-term configuration before it is
// shipped, catching curation mistakes that would silently weaken the filter.
package wordlist

import (
	"github.com/medusavr/moderation/internal/setup/config"
)

// Issue represents a validation issue found in the wordlist.
type Issue struct {
	Type        string
	Description string
	Term        string
	Location    int
}

// Validator defines the interface for all wordlist validators.
type Validator interface {
	Validate(wordlist *config.Wordlist) []Issue
}
