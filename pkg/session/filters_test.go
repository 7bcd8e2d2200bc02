package session

import (
	"net/url"
	"testing"

	"github.com/gorilla/sessions"
)

func newBareSession() *sessions.Session {
	return sessions.NewSession(sessions.NewCookieStore([]byte("test-key")), Name)
}

func TestMergeParams(t *testing.T) {
	t.Run("present keys overwrite", func(t *testing.T) {
		s := newBareSession()
		s.Values["searched"] = "old"

		dirty := MergeParams(s, url.Values{"searched": {"new"}})
		if !dirty {
			t.Fatal("expected dirty session")
		}
		if s.Values["searched"] != "new" {
			t.Fatalf("expected overwrite, got %v", s.Values["searched"])
		}
	})

	t.Run("absent keys untouched", func(t *testing.T) {
		s := newBareSession()
		s.Values["searched"] = "kept"
		s.Values["sorting_column"] = "title"

		dirty := MergeParams(s, url.Values{"start_date": {"2024-01-01"}})
		if !dirty {
			t.Fatal("expected dirty session")
		}
		if s.Values["searched"] != "kept" || s.Values["sorting_column"] != "title" {
			t.Fatal("absent keys must not change")
		}
		if s.Values["start_date"] != "2024-01-01" {
			t.Fatalf("expected start_date stored, got %v", s.Values["start_date"])
		}
	})

	t.Run("present but empty clears stored value", func(t *testing.T) {
		s := newBareSession()
		s.Values["searched"] = "old"

		dirty := MergeParams(s, url.Values{"searched": {""}})
		if !dirty {
			t.Fatal("expected dirty session")
		}
		if s.Values["searched"] != "" {
			t.Fatalf("expected empty overwrite, got %v", s.Values["searched"])
		}
	})

	t.Run("no filter keys leaves session clean", func(t *testing.T) {
		s := newBareSession()
		dirty := MergeParams(s, url.Values{"page": {"2"}, "utm_source": {"mail"}})
		if dirty {
			t.Fatal("expected clean session for non-filter params")
		}
		if len(s.Values) != 0 {
			t.Fatalf("expected no stored values, got %v", s.Values)
		}
	})
}

func TestLoadFilters(t *testing.T) {
	t.Run("empty session yields zero filters", func(t *testing.T) {
		f := LoadFilters(newBareSession())
		if f != (Filters{}) {
			t.Fatalf("expected zero Filters, got %+v", f)
		}
	})

	t.Run("reads all five keys", func(t *testing.T) {
		s := newBareSession()
		s.Values["searched"] = "shoes"
		s.Values["start_date"] = "2024-01-01"
		s.Values["end_date"] = "2024-02-01"
		s.Values["sorting_column"] = "title"
		s.Values["sorting_direction"] = "asc"

		f := LoadFilters(s)
		want := Filters{
			Searched:         "shoes",
			StartDate:        "2024-01-01",
			EndDate:          "2024-02-01",
			SortingColumn:    "title",
			SortingDirection: "asc",
		}
		if f != want {
			t.Fatalf("expected %+v, got %+v", want, f)
		}
	})

	t.Run("non-string values read as empty", func(t *testing.T) {
		s := newBareSession()
		s.Values["searched"] = 42

		f := LoadFilters(s)
		if f.Searched != "" {
			t.Fatalf("expected empty string for non-string value, got %q", f.Searched)
		}
	})
}

func TestNotices(t *testing.T) {
	t.Run("pop returns queued notice once", func(t *testing.T) {
		s := newBareSession()
		AddNotice(s, "Item was successfully created.")

		if got := PopNotice(s); got != "Item was successfully created." {
			t.Fatalf("expected queued notice, got %q", got)
		}
		if got := PopNotice(s); got != "" {
			t.Fatalf("expected empty after pop, got %q", got)
		}
	})

	t.Run("pop on empty session", func(t *testing.T) {
		if got := PopNotice(newBareSession()); got != "" {
			t.Fatalf("expected empty notice, got %q", got)
		}
	})
}
