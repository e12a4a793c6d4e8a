package wordlist_test

import (
	"testing"

	"github.com/medusavr/moderation/internal/setup/config"
	"github.com/medusavr/moderation/internal/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTypes(issues []wordlist.Issue) []string {
	types := make([]string, len(issues))
	for i, issue := range issues {
		types[i] = issue.Type
	}

	return types
}

func TestDefaultWordlistPassesValidation(t *testing.T) {
	t.Parallel()

	// The compiled-in defaults must clear the same gate a shipped
	// wordlist.jsonc has to pass.
	issues := wordlist.ValidateWordlist(config.DefaultWordlist())

	for _, issue := range issues {
		t.Errorf("%s: %s", issue.Type, issue.Description)
	}
}

func TestValidateEmptyWordlist(t *testing.T) {
	t.Parallel()

	issues := wordlist.ValidateWordlist(nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "empty_wordlist", issues[0].Type)

	issues = wordlist.ValidateWordlist(&config.Wordlist{})
	require.Len(t, issues, 1)
	assert.Equal(t, "empty_wordlist", issues[0].Type)
}

func TestValidateCleanWordlist(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "forbidden phrase", Category: config.CategoryViolence},
			{Term: "another bad term", Category: config.CategoryIllegal},
		},
		Critical: []string{"forbidden"},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Empty(t, issues)
}

func TestExactDuplicateDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "bad phrase", Category: config.CategoryViolence},
			{Term: "bad phrase", Category: config.CategoryViolence},
		},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Contains(t, issueTypes(issues), "exact_duplicate")
}

func TestSubstringRedundancyDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "attack", Category: config.CategoryViolence},
			{Term: "brutal attack scene", Category: config.CategoryViolence},
		},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Contains(t, issueTypes(issues), "substring_redundancy")
}

func TestSubstringTermsSkipRedundancyCheck(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "attack", Category: config.CategoryViolence, AllowSubstring: true},
			{Term: "brutal attack scene", Category: config.CategoryViolence},
		},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.NotContains(t, issueTypes(issues), "substring_redundancy")
}

func TestInvalidCategoryDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "bad phrase", Category: "nonsense"},
		},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Contains(t, issueTypes(issues), "invalid_category")
}

func TestEmptyAndUppercaseTermsDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "  ", Category: config.CategoryViolence},
			{Term: "Shouting Term", Category: config.CategoryViolence},
		},
	}

	types := issueTypes(wordlist.ValidateWordlist(wl))
	assert.Contains(t, types, "empty_required_field")
	assert.Contains(t, types, "uppercase_term")
}

func TestUnreachableSeverityPhraseDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "bad phrase", Category: config.CategoryViolence},
		},
		Critical: []string{"unrelated"},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Contains(t, issueTypes(issues), "unreachable_severity_phrase")
}

func TestConflictingSeverityListsDetected(t *testing.T) {
	t.Parallel()

	wl := &config.Wordlist{
		Terms: []config.TermEntry{
			{Term: "bad phrase", Category: config.CategoryViolence},
		},
		Critical: []string{"bad"},
		High:     []string{"bad"},
	}

	issues := wordlist.ValidateWordlist(wl)
	assert.Contains(t, issueTypes(issues), "conflicting_severity")
}
