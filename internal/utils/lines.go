package utils

import "strings"

// SplitLines turns newline-delimited form text into a list, dropping blank
// lines. Job posting responsibilities/requirements/perks cross the API in
// this shape.
func SplitLines(text string) []string {
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinLines is the inverse of SplitLines, used when loading a posting back
// into the edit form.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
