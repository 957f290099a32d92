package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shopsight/internal/model"
	"shopsight/internal/utils"
)

// fallbackIntent is assigned to queries built from raw text
const fallbackIntent = "product_search"

// ResolveQuery picks the structured query from whichever form the caller sent:
// a parsed query, else the decoded parser output, else keywords split from the raw text.
// Parser output that cannot be decoded falls back to the raw text when there is one.
func ResolveQuery(parsed *model.ParsedQuery, parserOutput, text string) (*model.ParsedQuery, error) {
	if parsed != nil {
		return parsed, nil
	}

	if strings.TrimSpace(parserOutput) != "" {
		var q model.ParsedQuery
		err := utils.DecodeParserOutput(parserOutput, &q)
		if err == nil {
			return &q, nil
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidQuery, err)
		}
	}

	if strings.TrimSpace(text) != "" {
		return FallbackQuery(text), nil
	}
	return nil, fmt.Errorf("%w: one of parsed_query, parser_output or query is required", model.ErrInvalidQuery)
}

// FallbackQuery keeps the words of text longer than two characters as keywords
func FallbackQuery(text string) *model.ParsedQuery {
	keywords := []string{}
	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return &model.ParsedQuery{
		Keywords: keywords,
		Filters:  &model.Filters{},
		Intent:   fallbackIntent,
	}
}
