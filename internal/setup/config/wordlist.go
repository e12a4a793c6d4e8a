package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/tailscale/hujson"
)

var ErrWordlistNotFound = errors.New("could not find wordlist file in any config path")

// Term categories. These group restricted terms by theme; they have no effect
// on matching and exist for curation and validation.
const (
	CategoryViolence      = "violence"
	CategoryMinors        = "minors"
	CategoryAnimals       = "animals"
	CategoryIllegal       = "illegal"
	CategoryHate          = "hate"
	CategoryNonConsent    = "non_consent"
	CategoryGore          = "gore"
	CategorySelfHarm      = "self_harm"
	CategoryBodily        = "bodily"
	CategoryReprogramming = "reprogramming"
)

// Categories lists every valid term category.
func Categories() []string {
	return []string{
		CategoryViolence, CategoryMinors, CategoryAnimals, CategoryIllegal,
		CategoryHate, CategoryNonConsent, CategoryGore, CategorySelfHarm,
		CategoryBodily, CategoryReprogramming,
	}
}

// TermEntry represents a single restricted term with its metadata.
type TermEntry struct {
	Term           string `json:"term"`                     // Lowercase term or phrase
	Category       string `json:"category"`                 // Theme the term belongs to
	AllowSubstring bool   `json:"allowSubstring,omitempty"` // Match inside words, not just at word boundaries
}

// Wordlist represents the full restricted-term configuration. The severity
// override lists are matched as substrings against blocked terms, in priority
// order critical > high (including reprogramming) > medium.
type Wordlist struct {
	Terms         []TermEntry `json:"terms"`
	Critical      []string    `json:"critical"`      // Blocked terms containing these are critical
	High          []string    `json:"high"`          // Blocked terms containing these are high
	Reprogramming []string    `json:"reprogramming"` // Blocked terms containing these are high
}

// LoadWordlist loads the wordlist configuration from the first available path.
// It searches the same config paths as LoadConfig for consistency.
func LoadWordlist(configPath string) (*Wordlist, error) {
	if configPath != "" {
		if wordlist, err := loadWordlistFromPath(configPath + "/wordlist.jsonc"); err == nil {
			return wordlist, nil
		}
	}

	for _, path := range configPaths() {
		if wordlist, err := loadWordlistFromPath(path + "/wordlist.jsonc"); err == nil {
			return wordlist, nil
		}
	}

	return nil, ErrWordlistNotFound
}

// loadWordlistFromPath loads the wordlist from a specific file path.
func loadWordlistFromPath(wordlistPath string) (*Wordlist, error) {
	data, err := os.ReadFile(wordlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist file: %w", err)
	}

	standardJSON, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize JSONC: %w", err)
	}

	var wordlist Wordlist
	if err := sonic.Unmarshal(standardJSON, &wordlist); err != nil {
		return nil, fmt.Errorf("failed to parse wordlist JSON: %w", err)
	}

	return &wordlist, nil
}
