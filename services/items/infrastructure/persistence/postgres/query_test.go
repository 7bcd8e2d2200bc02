package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/ghuser/itemboard/services/items/domain/models"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("zero filter is unconditional scan with default order", func(t *testing.T) {
		query, args := buildListQuery(models.ListFilter{})
		if strings.Contains(query, "WHERE") {
			t.Fatalf("expected no WHERE clause, got %q", query)
		}
		if !strings.HasSuffix(query, "ORDER BY updated_at desc") {
			t.Fatalf("expected default ORDER BY suffix, got %q", query)
		}
		if len(args) != 0 {
			t.Fatalf("expected no args, got %d", len(args))
		}
	})

	t.Run("search produces single OR condition with one bind", func(t *testing.T) {
		query, args := buildListQuery(models.ListFilter{Searched: "shoes"})
		if !strings.Contains(query, "title ILIKE '%' || $1 || '%'") {
			t.Fatalf("missing title predicate: %q", query)
		}
		if !strings.Contains(query, "plainto_tsquery('english', $1)") {
			t.Fatalf("missing description predicate: %q", query)
		}
		if !strings.Contains(query, " OR ") {
			t.Fatalf("expected OR between predicates: %q", query)
		}
		if len(args) != 1 || args[0] != "shoes" {
			t.Fatalf("expected single arg %q, got %v", "shoes", args)
		}
	})

	t.Run("date bounds get sequential placeholders", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		query, args := buildListQuery(models.ListFilter{StartDate: &start, EndDate: &end})

		if !strings.Contains(query, "updated_at >= $1") {
			t.Fatalf("missing start bound: %q", query)
		}
		if !strings.Contains(query, "updated_at <= $2") {
			t.Fatalf("missing end bound: %q", query)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("search plus dates joins with AND and renumbers binds", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		query, args := buildListQuery(models.ListFilter{Searched: "shoes", StartDate: &start})

		if !strings.Contains(query, ") AND updated_at >= $2") {
			t.Fatalf("expected AND-joined second condition with $2: %q", query)
		}
		if len(args) != 2 {
			t.Fatalf("expected 2 args, got %d", len(args))
		}
		if args[0] != "shoes" {
			t.Fatalf("expected first arg %q, got %v", "shoes", args[0])
		}
	})

	t.Run("order by is always the final clause", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		query, _ := buildListQuery(models.ListFilter{
			Searched:  "shoes",
			StartDate: &start,
			Column:    models.SortByTitle,
			Direction: models.SortAscending,
		})
		if !strings.HasSuffix(query, "ORDER BY title asc") {
			t.Fatalf("expected ORDER BY as final clause, got %q", query)
		}
		if strings.Index(query, "WHERE") > strings.Index(query, "ORDER BY") {
			t.Fatalf("WHERE must precede ORDER BY: %q", query)
		}
	})

	t.Run("unvalidated sort values fall back to defaults", func(t *testing.T) {
		query, _ := buildListQuery(models.ListFilter{
			Column:    models.SortColumn("id; DROP TABLE items"),
			Direction: models.SortDirection("up"),
		})
		if !strings.HasSuffix(query, "ORDER BY updated_at desc") {
			t.Fatalf("expected whitelist fallback, got %q", query)
		}
	})
}
