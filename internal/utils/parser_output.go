package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when parser output holds no decodable JSON object
var ErrNoJSON = errors.New("no JSON object in parser output")

var (
	fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	fencedBlock     = regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
	trailingComma   = regexp.MustCompile(`,\s*([}\]])`)
	bareKey         = regexp.MustCompile(`([{,]\s*)([A-Za-z_]\w*)(\s*:)`)
	controlChars    = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// DecodeParserOutput decodes a JSON object out of raw query parser output into target.
// The output may be bare JSON, a fenced markdown block, or JSON surrounded by prose.
// Trailing commas and unquoted keys are repaired as a last attempt.
// Output holding no object, including a bare null, fails with ErrNoJSON.
func DecodeParserOutput(raw string, target interface{}) error {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "\ufeff")
	if raw == "" {
		return ErrNoJSON
	}

	for _, candidate := range []string{raw, fencedContent(raw), firstObject(raw)} {
		// Only objects count; null, arrays and scalars would decode to an empty target
		if !strings.HasPrefix(candidate, "{") {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), target); err == nil {
			return nil
		}
		if err := json.Unmarshal([]byte(repairJSON(candidate)), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrNoJSON, truncate(raw, 100))
}

// fencedContent returns the body of the first ```json block, or of a plain block that starts an object
func fencedContent(s string) string {
	if m := fencedJSONBlock.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	if m := fencedBlock.FindStringSubmatch(s); len(m) > 1 && strings.HasPrefix(m[1], "{") {
		return m[1]
	}
	return ""
}

// firstObject returns the first brace-balanced object, ignoring braces inside strings
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

func repairJSON(s string) string {
	s = controlChars.ReplaceAllString(s, "")
	s = trailingComma.ReplaceAllString(s, "$1")
	return bareKey.ReplaceAllString(s, `$1"$2"$3`)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
