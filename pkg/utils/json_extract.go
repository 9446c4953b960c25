package utils

import (
	"regexp"
	"strings"
)

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSONObject recovers the first JSON object embedded in raw completion
// text. Markdown code fences are stripped, prose before the object and after
// its balanced closing brace is discarded, and trailing commas before a
// closing brace or bracket are removed. When the object never closes
// (truncated generation) the partial text is returned as-is so the caller can
// attempt a parse and decide what to do with the failure. This is syntactic
// repair only; field-level normalization happens downstream.
func ExtractJSONObject(raw string) (string, error) {
	s := stripCodeFences(raw)

	start := strings.Index(s, "{")
	if start == -1 {
		return "", ErrNoJSONFound
	}

	if end := matchingBrace(s, start); end != -1 {
		s = s[start : end+1]
	} else {
		s = s[start:]
	}

	return trailingCommaPattern.ReplaceAllString(s, "$1"), nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// matchingBrace returns the index of the brace closing the object opened at
// start, or -1 if the text ends first. Braces inside string literals are
// ignored, escape sequences included.
func matchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
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
