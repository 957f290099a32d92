package model

import (
	"encoding/json"
	"strings"
)

// ParsedQuery is the structured query produced by the upstream natural language parser
type ParsedQuery struct {
	Keywords   []string   `json:"keywords"`
	Attributes Attributes `json:"attributes"`
	Filters    *Filters   `json:"filters,omitempty"`
	Intent     string     `json:"intent,omitempty"`
}

// Attributes are the product attributes extracted from the query.
// An empty value means the attribute was not specified.
type Attributes struct {
	Brand      string `json:"brand,omitempty"`
	Type       string `json:"type,omitempty"`
	Color      string `json:"color,omitempty"`
	Style      string `json:"style,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Department string `json:"department,omitempty"`
}

// UnmarshalJSON decodes attributes leniently: values that are not strings
// (null, numbers, objects) are treated as unspecified instead of failing the request.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an object at all, nothing usable
		*a = Attributes{}
		return nil
	}

	str := func(key string) string {
		var s string
		if msg, ok := raw[key]; ok && json.Unmarshal(msg, &s) == nil {
			return strings.TrimSpace(s)
		}
		return ""
	}

	*a = Attributes{
		Brand:      str("brand"),
		Type:       str("type"),
		Color:      str("color"),
		Style:      str("style"),
		Gender:     str("gender"),
		Department: str("department"),
	}
	return nil
}

// Filters are equality filters pushed down to the catalog.
// A nil *Filters and an empty Filters both mean "no filters".
type Filters struct {
	Department string   `json:"department,omitempty"`
	Color      string   `json:"color,omitempty"`
	Type       string   `json:"type,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"` // carried for callers, not applied to the article table
}

// Predicate describes which catalog rows qualify for a query.
// Rows must contain at least one keyword (in name or type) and satisfy every filter.
type Predicate struct {
	Keywords   []string
	Department string
	Color      string
	Type       string
}

// NewPredicate builds a predicate from query keywords and optional filters.
// Blank keywords are dropped since they would match every row.
func NewPredicate(keywords []string, filters *Filters) Predicate {
	p := Predicate{}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			p.Keywords = append(p.Keywords, kw)
		}
	}
	if filters != nil {
		p.Department = strings.TrimSpace(filters.Department)
		p.Color = strings.TrimSpace(filters.Color)
		p.Type = strings.TrimSpace(filters.Type)
	}
	return p
}

// MatchesAll reports whether the predicate places no restriction on rows
func (p Predicate) MatchesAll() bool {
	return len(p.Keywords) == 0 && p.Department == "" && p.Color == "" && p.Type == ""
}
