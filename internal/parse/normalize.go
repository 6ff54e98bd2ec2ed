package parse

import (
	"regexp"
	"strings"
	"unicode"
)

var decorationRe = regexp.MustCompile(`^\s*\*\s?`)

// NormalizeLines strips the " * " continuation decoration from each line of a
// block body and drops blank lines at both ends. Interior blank lines stay.
func NormalizeLines(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r\n")
		if loc := decorationRe.FindStringIndex(line); loc != nil {
			line = line[loc[1]:]
		}
		lines = append(lines, strings.TrimRightFunc(line, unicode.IsSpace))
	}

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
