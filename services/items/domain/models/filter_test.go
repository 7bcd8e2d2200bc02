package models

import (
	"testing"
	"time"
)

func TestNewListFilter(t *testing.T) {
	t.Run("empty inputs produce open filter with default sort", func(t *testing.T) {
		f := NewListFilter("", "", "", "", "")
		if f.Searched != "" {
			t.Fatalf("expected empty Searched, got %q", f.Searched)
		}
		if f.StartDate != nil || f.EndDate != nil {
			t.Fatal("expected nil date bounds")
		}
		if f.Column != SortByUpdatedAt {
			t.Fatalf("expected default column updated_at, got %q", f.Column)
		}
		if f.Direction != SortDescending {
			t.Fatalf("expected default direction desc, got %q", f.Direction)
		}
	})

	t.Run("date-only format parses", func(t *testing.T) {
		f := NewListFilter("", "2024-03-01", "", "", "")
		if f.StartDate == nil {
			t.Fatal("expected StartDate to be set")
		}
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !f.StartDate.Equal(want) {
			t.Fatalf("expected %v, got %v", want, *f.StartDate)
		}
	})

	t.Run("rfc3339 format parses", func(t *testing.T) {
		f := NewListFilter("", "", "2024-03-01T12:30:00Z", "", "")
		if f.EndDate == nil {
			t.Fatal("expected EndDate to be set")
		}
		if f.EndDate.Hour() != 12 || f.EndDate.Minute() != 30 {
			t.Fatalf("unexpected parsed time: %v", *f.EndDate)
		}
	})

	t.Run("unparsable date treated as absent", func(t *testing.T) {
		f := NewListFilter("", "not-a-date", "03/01/2024", "", "")
		if f.StartDate != nil {
			t.Fatalf("expected nil StartDate, got %v", *f.StartDate)
		}
		if f.EndDate != nil {
			t.Fatalf("expected nil EndDate, got %v", *f.EndDate)
		}
	})

	t.Run("sort inputs pass through whitelist", func(t *testing.T) {
		f := NewListFilter("", "", "", "title", "asc")
		if f.Column != SortByTitle {
			t.Fatalf("expected title, got %q", f.Column)
		}
		if f.Direction != SortAscending {
			t.Fatalf("expected asc, got %q", f.Direction)
		}
	})

	t.Run("search term carried verbatim", func(t *testing.T) {
		f := NewListFilter("  running shoes  ", "", "", "", "")
		if f.Searched != "  running shoes  " {
			t.Fatalf("expected verbatim search term, got %q", f.Searched)
		}
	})
}
