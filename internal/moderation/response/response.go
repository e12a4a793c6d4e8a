// Package response provides the defense-in-depth layer over AI-generated text
// and the detector for manipulation intent in user input. The two concerns are
// split deliberately: an AI self-violation must never reach the client and is
// always sanitized, while a user manipulation attempt is scored for the caller
// to escalate but never rewritten.
package response

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/medusavr/moderation/internal/setup/config"
	"go.uber.org/zap"
)

// placeholderPhrase replaces redacted substrings so a partially salvageable
// response stays in character instead of surfacing a generic error.
const placeholderPhrase = "I'm an adult character"

// salvageableRatio is the minimum share of the original response that must
// survive redaction before the whole response is replaced with a fallback.
const salvageableRatio = 0.3

// RiskLevel grades how dangerous a manipulation attempt is.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

// String returns the lowercase name of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return fmt.Sprintf("RiskLevel(%d)", int(r))
	}
}

// Violation records a single prohibited pattern hit in AI-generated text.
type Violation struct {
	Pattern      string `json:"pattern"`      // The pattern that matched
	OriginalText string `json:"originalText"` // The offending substring
}

// FilterResult carries the sanitized response. FilteredResponse is always safe
// to display; Violations is non-empty iff the original required rewriting.
type FilterResult struct {
	FilteredResponse string      `json:"filteredResponse"`
	Violations       []Violation `json:"violations"`
}

// ManipulationCheckResult scores manipulation intent in user input.
type ManipulationCheckResult struct {
	IsManipulation  bool      `json:"isManipulation"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	MatchedPatterns []string  `json:"matchedPatterns"`
}

// Filter scans AI-generated replies for self-identifying age claims,
// persona breaks and manipulation compliance, and scores user input for
// prompt-injection intent. Safe for concurrent use.
type Filter struct {
	prohibited    []*regexp.Regexp
	highRisk      []*regexp.Regexp
	mediumRisk    []*regexp.Regexp
	lowRisk       []*regexp.Regexp
	safeResponses []string
	logger        *zap.Logger
}

// NewFilter compiles the pattern set into a Filter.
// An invalid pattern fails construction.
func NewFilter(patterns *config.PatternSet, logger *zap.Logger) (*Filter, error) {
	compile := func(group string, exprs []string) ([]*regexp.Regexp, error) {
		compiled := make([]*regexp.Regexp, 0, len(exprs))

		for _, expr := range exprs {
			regex, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("failed to compile %s pattern %q: %w", group, expr, err)
			}

			compiled = append(compiled, regex)
		}

		return compiled, nil
	}

	prohibited, err := compile("prohibited", patterns.Prohibited)
	if err != nil {
		return nil, err
	}

	highRisk, err := compile("high-risk", patterns.HighRisk)
	if err != nil {
		return nil, err
	}

	mediumRisk, err := compile("medium-risk", patterns.MediumRisk)
	if err != nil {
		return nil, err
	}

	lowRisk, err := compile("low-risk", patterns.LowRisk)
	if err != nil {
		return nil, err
	}

	return &Filter{
		prohibited:    prohibited,
		highRisk:      highRisk,
		mediumRisk:    mediumRisk,
		lowRisk:       lowRisk,
		safeResponses: patterns.SafeResponses,
		logger:        logger.Named("response_filter"),
	}, nil
}

// FilterResponse scans AI-generated text and redacts prohibited content.
// When too little of the original survives redaction, the entire response is
// replaced with an in-character fallback for the given character.
func (f *Filter) FilterResponse(rawText, characterName string) *FilterResult {
	filtered := rawText

	var (
		violations []Violation
		removed    int
	)

	for _, regex := range f.prohibited {
		matches := regex.FindAllString(filtered, -1)
		if len(matches) == 0 {
			continue
		}

		for _, match := range matches {
			violations = append(violations, Violation{
				Pattern:      regex.String(),
				OriginalText: match,
			})
			removed += len(match)
		}

		filtered = regex.ReplaceAllString(filtered, placeholderPhrase)
	}

	if len(violations) == 0 {
		return &FilterResult{FilteredResponse: rawText}
	}

	// Replace the whole response when redaction gutted it
	if rawText == "" || float64(len(rawText)-removed) < salvageableRatio*float64(len(rawText)) {
		filtered = f.safeResponse(characterName)
	}

	f.logger.Warn("AI response filtered",
		zap.String("characterName", characterName),
		zap.Int("violations", len(violations)),
		zap.Int("originalLength", len(rawText)),
		zap.Int("filteredLength", len(filtered)))

	return &FilterResult{
		FilteredResponse: filtered,
		Violations:       violations,
	}
}

// CheckUserManipulation scores user input for prompt-injection and
// age-manipulation intent. The highest-risk group with a match wins;
// nothing is rewritten.
func (f *Filter) CheckUserManipulation(userText string) *ManipulationCheckResult {
	groups := []struct {
		patterns []*regexp.Regexp
		level    RiskLevel
	}{
		{f.highRisk, RiskHigh},
		{f.mediumRisk, RiskMedium},
		{f.lowRisk, RiskLow},
	}

	for _, group := range groups {
		var matched []string

		for _, regex := range group.patterns {
			matched = append(matched, regex.FindAllString(userText, -1)...)
		}

		if len(matched) > 0 {
			return &ManipulationCheckResult{
				IsManipulation:  true,
				RiskLevel:       group.level,
				MatchedPatterns: matched,
			}
		}
	}

	return &ManipulationCheckResult{
		IsManipulation: false,
		RiskLevel:      RiskLow,
	}
}

// safeResponse builds a full fallback reply attributed to the character.
func (f *Filter) safeResponse(characterName string) string {
	reply := "Let's focus on having a great conversation! What interests you today?"
	if len(f.safeResponses) > 0 {
		reply = f.safeResponses[rand.IntN(len(f.safeResponses))] //nolint:gosec
	}

	if characterName != "" {
		return fmt.Sprintf("*%s smiles warmly* %s", characterName, reply)
	}

	return reply
}
