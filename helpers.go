package ask

import "strings"

// normalizeResponse reduces a response to its comparable form: surrounding
// whitespace stripped and letters lowercased. Menu matching compares
// normalized forms on both sides, so "  Banana " and "banana" are equal.
func normalizeResponse(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// prefixMatches returns the 0-based indexes of every option whose
// normalized text begins with the normalized input. Option order is
// preserved. An exact match is a prefix match of full length, so it needs
// no separate pass.
func prefixMatches(input string, options []string) []int {
	normalized := normalizeResponse(input)
	var matches []int
	for i, option := range options {
		if strings.HasPrefix(normalizeResponse(option), normalized) {
			matches = append(matches, i)
		}
	}
	return matches
}

// padPrompt appends a single space to text unless it already ends in a
// space, tab, or newline, keeping the typed response visually separated
// from the prompt.
func padPrompt(text string) string {
	if strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\t") || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + " "
}

// chompLine strips one trailing line terminator, handling both LF and
// CRLF endings.
func chompLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
