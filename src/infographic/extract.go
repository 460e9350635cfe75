package infographic

import (
	"fmt"
	"regexp"
	"strings"
)

// Extractor pulls the JSON blob out of a structuring response.
type Extractor func(text string) (string, bool)

// greedyJSON spans from the first '{' to the last '}' across lines. With two
// unrelated objects it also captures the prose between them; that is kept as is.
var greedyJSON = regexp.MustCompile(`(?s)\{.*\}`)

func ExtractGreedy(text string) (string, bool) {
	loc := greedyJSON.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// ExtractBalanced returns the first complete top-level object, skipping braces
// inside JSON strings. The text is scanned once from the first '{'; when that
// brace never closes the reply is malformed and ExtractGreedy decides.
func ExtractBalanced(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	if end := closingBrace(text, start); end >= 0 {
		return text[start : end+1], true
	}
	return ExtractGreedy(text)
}

func closingBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

const (
	ExtractModeGreedy   = "greedy"
	ExtractModeBalanced = "balanced"
)

func ExtractorFor(mode string) (Extractor, error) {
	switch mode {
	case "", ExtractModeGreedy:
		return ExtractGreedy, nil
	case ExtractModeBalanced:
		return ExtractBalanced, nil
	default:
		return nil, fmt.Errorf("unknown extract mode %q", mode)
	}
}
