package utils_test

import (
	"testing"

	"github.com/medusavr/moderation/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "string with diacritics",
			input: "héllo wörld",
			want:  "hello world",
		},
		{
			name:  "mixed case with extra spaces",
			input: "HéLLo   WöRLD",
			want:  "hello world",
		},
		{
			name:  "fullwidth characters",
			input: "ｈｅｌｌｏ",
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			normalizer := utils.NewTextNormalizer()
			assert.Equal(t, tt.want, normalizer.Normalize(tt.input))
		})
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{
			name:   "empty strings",
			s:      "",
			substr: "",
			want:   false,
		},
		{
			name:   "plain match",
			s:      "some restricted term here",
			substr: "restricted term",
			want:   true,
		},
		{
			name:   "diacritic match",
			s:      "réstricted térm",
			substr: "restricted term",
			want:   true,
		},
		{
			name:   "no match",
			s:      "harmless text",
			substr: "restricted",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			normalizer := utils.NewTextNormalizer()
			assert.Equal(t, tt.want, normalizer.Contains(tt.s, tt.substr))
		})
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", utils.TruncateString("anything", 0))
	assert.Equal(t, "short", utils.TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", utils.TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", utils.TruncateString("abcdef", 2))
}
