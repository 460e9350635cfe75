package infographic

import (
	"regexp"
	"strings"
)

var (
	htmlFence     = regexp.MustCompile("(?i)```html\\s*")
	leadingFence  = regexp.MustCompile("^(?:```\\s*)+")
	trailingFence = regexp.MustCompile("(?:\\s*```)+\\s*$")
)

// CleanHTML strips markdown code fences from a rendering response and trims it.
// It repeats until nothing changes, so cleaning its own output is a no-op.
func CleanHTML(raw string) string {
	s := raw
	for {
		next := stripFences(s)
		if next == s {
			return next
		}
		s = next
	}
}

func stripFences(s string) string {
	s = htmlFence.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
