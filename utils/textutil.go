package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// findBlock locates the first case-insensitive occurrence of startAnchor
// and returns the text from just after it up to the nearest occurrence of
// any end anchor, or to end-of-text if none is found. The second return
// is false when startAnchor does not occur at all.
func findBlock(text, startAnchor string, endAnchors []string) (string, bool) {
	lower := strings.ToLower(text)
	start := strings.Index(lower, strings.ToLower(startAnchor))
	if start < 0 {
		return "", false
	}
	rest := text[start+len(startAnchor):]
	restLower := lower[start+len(startAnchor):]

	end := len(rest)
	for _, anchor := range endAnchors {
		if idx := strings.Index(restLower, strings.ToLower(anchor)); idx >= 0 && idx < end {
			end = idx
		}
	}
	return rest[:end], true
}

// parseAmount strips thousands separators and parses a decimal amount.
// A token that does not parse yields nil, never an error.
func parseAmount(token string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	if cleaned == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &amount
}

// isNumeric reports whether a trimmed token is a parseable amount.
func isNumeric(token string) bool {
	return parseAmount(token) != nil
}

// looksLikeEmail reports whether a line is a bare local@domain.tld token.
func looksLikeEmail(line string) bool {
	return emailRegex.MatchString(strings.TrimSpace(line))
}

// splitLines breaks a block into trimmed, non-empty lines.
func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// strPtr returns a pointer to the trimmed string, or nil when the trimmed
// value is empty. Empty captures must normalize to null, not "".
func strPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// firstGroup runs a regex and returns the first capture group trimmed, or
// nil on no match. All single-valued fields are first-match-wins.
func firstGroup(re *regexp.Regexp, text string) *string {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return strPtr(m[1])
	}
	return nil
}

// firstGroupAmount is firstGroup for numeric captures.
func firstGroupAmount(re *regexp.Regexp, text string) *float64 {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return parseAmount(m[1])
	}
	return nil
}
