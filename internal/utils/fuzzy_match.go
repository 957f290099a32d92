package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExactMatch reports whether text and term are equal after trimming and case folding
func ExactMatch(text, term string) bool {
	textNorm := strings.ToLower(strings.TrimSpace(text))
	termNorm := strings.ToLower(strings.TrimSpace(term))
	if textNorm == "" || termNorm == "" {
		return false
	}
	return textNorm == termNorm
}

// WordMatch reports whether term occurs in text as a whole token.
// Both sides of the occurrence must be a non-word character or a string edge,
// so "nike" does not match inside "jannike".
func WordMatch(text, term string) bool {
	return boundedMatch(text, term, isNonWord)
}

// FuzzyMatch reports whether term occurs in text at a word boundary or
// delimited by whitespace or hyphens, e.g. "running" in "running-shoes".
// Arbitrary substrings ("shoe" in "shoes") are still rejected.
func FuzzyMatch(text, term string) bool {
	if WordMatch(text, term) {
		return true
	}
	return boundedMatch(text, term, isCompoundDelimiter)
}

// boundedMatch scans every occurrence of term in text (case-insensitive) and
// accepts the first one whose neighbouring runes satisfy boundary.
// An edge of the string always counts as a boundary.
func boundedMatch(text, term string, boundary func(r rune) bool) bool {
	if text == "" || term == "" {
		return false
	}

	haystack := strings.ToLower(text)
	needle := strings.ToLower(term)

	for offset := 0; offset <= len(haystack)-len(needle); {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)

		before, after := true, true
		if start > 0 {
			r, _ := utf8.DecodeLastRuneInString(haystack[:start])
			before = boundary(r)
		}
		if end < len(haystack) {
			r, _ := utf8.DecodeRuneInString(haystack[end:])
			after = boundary(r)
		}
		if before && after {
			return true
		}

		// Step one rune past the current start so overlapping occurrences are tried
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}

	return false
}

func isNonWord(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

func isCompoundDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '-'
}
