package utils

import "strings"

// CompressWhitespacePreserveNewlines collapses runs of spaces on each line
// and trims leading/trailing whitespace while keeping line structure intact.
func CompressWhitespacePreserveNewlines(s string) string {
	// Normalize line endings to \n
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// TruncateString shortens s to maxLen runes, appending an ellipsis when truncated.
// Used when storing violating content so oversized submissions cannot bloat the ledger.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
