package specification

import (
	"fmt"
	"strings"
)

// OrderClause is one parsed pair of an ordering string such as
// "created_at:desc,title:asc". Input order is the applied sort precedence.
type OrderClause struct {
	Column    string
	Direction string
}

func (c OrderClause) Spec() Specification {
	return OrderBy{Field: c.Column, Desc: strings.EqualFold(c.Direction, "desc")}
}

// ParseOrderString splits raw on "," then on ":". Column names are checked
// against the caller's sortable allow-list so they never reach SQL unvetted.
// An empty raw string yields no clauses.
func ParseOrderString(raw string, sortable ...string) ([]OrderClause, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	allowed := make(map[string]bool, len(sortable))
	for _, col := range sortable {
		allowed[col] = true
	}

	parts := strings.Split(raw, ",")
	clauses := make([]OrderClause, 0, len(parts))
	for _, part := range parts {
		pair := strings.SplitN(strings.TrimSpace(part), ":", 2)
		column := strings.TrimSpace(pair[0])
		if column == "" {
			return nil, fmt.Errorf("order: empty column in %q", raw)
		}
		if !allowed[column] {
			return nil, fmt.Errorf("order: column %q is not sortable", column)
		}

		direction := "asc"
		if len(pair) == 2 {
			direction = strings.ToLower(strings.TrimSpace(pair[1]))
		}
		if direction != "asc" && direction != "desc" {
			return nil, fmt.Errorf("order: invalid direction %q for column %q", direction, column)
		}

		clauses = append(clauses, OrderClause{Column: column, Direction: direction})
	}

	return clauses, nil
}
