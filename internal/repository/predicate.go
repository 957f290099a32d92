package repository

import (
	"strings"

	"shopsight/internal/model"
)

// likeEscaper escapes LIKE wildcards so keywords match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildWhereClause translates a predicate into a WHERE clause with `?` placeholders.
// Keywords form an OR group over name and type; filters form an AND group of
// case-insensitive equalities. An empty predicate yields "1=1".
func buildWhereClause(p model.Predicate) (string, []interface{}) {
	var whereParts []string
	args := []interface{}{}

	if len(p.Keywords) > 0 {
		keywordClauses := make([]string, 0, len(p.Keywords))
		for _, keyword := range p.Keywords {
			keywordClauses = append(keywordClauses,
				`(LOWER(prod_name) LIKE ? ESCAPE '\' OR LOWER(product_type_name) LIKE ? ESCAPE '\')`)
			pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
			args = append(args, pattern, pattern)
		}
		whereParts = append(whereParts, "("+strings.Join(keywordClauses, " OR ")+")")
	}

	var filterClauses []string
	if p.Department != "" {
		filterClauses = append(filterClauses, "LOWER(department_name) = ?")
		args = append(args, strings.ToLower(p.Department))
	}
	if p.Color != "" {
		filterClauses = append(filterClauses, "LOWER(colour_group_name) = ?")
		args = append(args, strings.ToLower(p.Color))
	}
	if p.Type != "" {
		filterClauses = append(filterClauses, "LOWER(product_type_name) = ?")
		args = append(args, strings.ToLower(p.Type))
	}
	if len(filterClauses) > 0 {
		whereParts = append(whereParts, strings.Join(filterClauses, " AND "))
	}

	if len(whereParts) == 0 {
		return "1=1", args
	}
	return strings.Join(whereParts, " AND "), args
}
