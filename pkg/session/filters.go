package session

import (
	"net/url"

	"github.com/gorilla/sessions"
)

// FilterKeys are the list-view parameters carried across requests in the
// session. A key present on a request overwrites the stored value (even when
// empty, which clears that filter); absent keys leave prior values untouched.
var FilterKeys = []string{"searched", "start_date", "end_date", "sorting_column", "sorting_direction"}

// Filters is the raw filter state as stored in the session. Values are kept
// as submitted strings; interpretation (date parsing, sort whitelisting)
// happens when the query filter is built.
type Filters struct {
	Searched         string
	StartDate        string
	EndDate          string
	SortingColumn    string
	SortingDirection string
}

// MergeParams merges the filter params present in query into the session.
// Returns true if any value was written, so callers know the session is dirty
// and must be saved.
func MergeParams(s *sessions.Session, query url.Values) bool {
	dirty := false
	for _, key := range FilterKeys {
		if query.Has(key) {
			s.Values[key] = query.Get(key)
			dirty = true
		}
	}
	return dirty
}

// LoadFilters reads the current filter state out of the session. Missing or
// non-string values read as empty strings.
func LoadFilters(s *sessions.Session) Filters {
	return Filters{
		Searched:         stringValue(s, "searched"),
		StartDate:        stringValue(s, "start_date"),
		EndDate:          stringValue(s, "end_date"),
		SortingColumn:    stringValue(s, "sorting_column"),
		SortingDirection: stringValue(s, "sorting_direction"),
	}
}

func stringValue(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

const noticeFlashKey = "notice"

// AddNotice queues a one-shot success notice for the next rendered page.
func AddNotice(s *sessions.Session, msg string) {
	s.AddFlash(msg, noticeFlashKey)
}

// PopNotice removes and returns the pending notice, or "" when none is queued.
// The session must be saved afterwards for the removal to stick.
func PopNotice(s *sessions.Session) string {
	flashes := s.Flashes(noticeFlashKey)
	if len(flashes) == 0 {
		return ""
	}
	if msg, ok := flashes[len(flashes)-1].(string); ok {
		return msg
	}
	return ""
}
