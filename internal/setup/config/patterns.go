package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/bytedance/sonic"
	"github.com/tailscale/hujson"
)

var ErrPatternSetNotFound = errors.New("could not find patterns file in any config path")

// PatternSet holds the regular expressions used by the AI response filter and
// the user-manipulation detector. Patterns are compiled at startup; an invalid
// pattern fails construction rather than being skipped silently.
type PatternSet struct {
	// Prohibited patterns are scanned against AI-generated text and redacted.
	Prohibited []string `json:"prohibited"`
	// HighRisk, MediumRisk and LowRisk are scanned against user input,
	// checked in that order; the first group with a match sets the risk level.
	HighRisk   []string `json:"highRisk"`
	MediumRisk []string `json:"mediumRisk"`
	LowRisk    []string `json:"lowRisk"`
	// SafeResponses replace AI output that cannot be salvaged by redaction.
	SafeResponses []string `json:"safeResponses"`
}

// Compile checks that every pattern in the set is a valid regular expression.
func (p *PatternSet) Compile() error {
	groups := map[string][]string{
		"prohibited": p.Prohibited,
		"highRisk":   p.HighRisk,
		"mediumRisk": p.MediumRisk,
		"lowRisk":    p.LowRisk,
	}

	for name, patterns := range groups {
		for _, pattern := range patterns {
			if _, err := regexp.Compile(pattern); err != nil {
				return fmt.Errorf("invalid %s pattern %q: %w", name, pattern, err)
			}
		}
	}

	return nil
}

// LoadPatternSet loads the pattern configuration from the first available path.
// It searches the same config paths as LoadConfig for consistency.
func LoadPatternSet(configPath string) (*PatternSet, error) {
	if configPath != "" {
		if patterns, err := loadPatternSetFromPath(configPath + "/patterns.jsonc"); err == nil {
			return patterns, nil
		}
	}

	for _, path := range configPaths() {
		if patterns, err := loadPatternSetFromPath(path + "/patterns.jsonc"); err == nil {
			return patterns, nil
		}
	}

	return nil, ErrPatternSetNotFound
}

// loadPatternSetFromPath loads the pattern set from a specific file path.
func loadPatternSetFromPath(patternsPath string) (*PatternSet, error) {
	data, err := os.ReadFile(patternsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read patterns file: %w", err)
	}

	standardJSON, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize JSONC: %w", err)
	}

	var patterns PatternSet
	if err := sonic.Unmarshal(standardJSON, &patterns); err != nil {
		return nil, fmt.Errorf("failed to parse patterns JSON: %w", err)
	}

	return &patterns, nil
}
