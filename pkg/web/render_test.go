package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeItem struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type fakeFilters struct {
	Searched         string
	StartDate        string
	EndDate          string
	SortingColumn    string
	SortingDirection string
}

func TestNewRenderer(t *testing.T) {
	if _, err := NewRenderer(); err != nil {
		t.Fatalf("embedded templates must parse: %v", err)
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("renders page inside layout", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := &ViewData{
			Title: "Items",
			Data: struct {
				Filters fakeFilters
				Items   []fakeItem
			}{},
		}
		if err := r.Render(w, 200, "items/index", data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		body := w.Body.String()
		if !strings.Contains(body, "<h1>Items</h1>") {
			t.Fatal("missing page content")
		}
		if !strings.Contains(body, "<title>Items") {
			t.Fatal("missing layout title")
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("expected text/html, got %q", ct)
		}
	})

	t.Run("notice renders when set", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := &ViewData{
			Notice: "Item was successfully created.",
			Data: struct {
				Filters fakeFilters
				Items   []fakeItem
			}{},
		}
		if err := r.Render(w, 200, "items/index", data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(w.Body.String(), "Item was successfully created.") {
			t.Fatal("missing notice in body")
		}
	})

	t.Run("unknown page is an error, nothing written", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := r.Render(w, 200, "items/missing", &ViewData{}); err == nil {
			t.Fatal("expected error for unknown page")
		}
		if w.Body.Len() != 0 {
			t.Fatal("failed render must not write a body")
		}
	})

	t.Run("escapes html in data", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := &ViewData{
			Data: struct {
				Item fakeItem
			}{Item: fakeItem{ID: 1, Title: "<script>alert(1)</script>"}},
		}
		if err := r.Render(w, 200, "items/show", data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		body := w.Body.String()
		if strings.Contains(body, "<script>alert(1)</script>") {
			t.Fatal("template output must escape user data")
		}
		if !strings.Contains(body, "&lt;script&gt;") {
			t.Fatal("expected escaped markup in body")
		}
	})
}
