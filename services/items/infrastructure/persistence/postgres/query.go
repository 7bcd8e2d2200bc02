package postgres

import (
	"fmt"
	"strings"

	"github.com/ghuser/itemboard/services/items/domain/models"
)

const selectItemColumns = "SELECT id, title, coalesce(description, ''), created_at, updated_at FROM items"

// buildListQuery composes the full list statement from a ListFilter.
//
// Each filter input contributes a parameterized WHERE fragment only when set,
// so an empty filter degenerates to an unconditional scan. The combined search
// is a single OR inside one WHERE clause, so rows matching both the title and
// the description predicate appear once, with no union to deduplicate.
// ORDER BY is always the final clause; column and direction pass through the
// whitelist validators, never raw user input.
func buildListQuery(f models.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.Searched != "" {
		args = append(args, f.Searched)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE '%%' || $%d || '%%' OR to_tsvector('english', coalesce(description, '')) @@ plainto_tsquery('english', $%d))",
			n, n,
		))
	}

	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("updated_at >= $%d", len(args)))
	}

	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("updated_at <= $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(selectItemColumns)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	// Re-validate even hand-built filters so a zero-value ListFilter sorts by
	// the defaults instead of producing "ORDER BY  ".
	column := models.SortingColumn(string(f.Column))
	direction := models.SortingDirection(string(f.Direction))
	fmt.Fprintf(&sb, " ORDER BY %s %s", column, direction)

	return sb.String(), args
}
