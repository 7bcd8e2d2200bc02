package models

import "time"

// ListFilter is the explicit filter context passed into the list query:
// the interpreted form of the raw per-session filter state. Zero values mean
// "no constraint": an empty Searched matches everything and nil dates are
// open bounds.
type ListFilter struct {
	Searched  string
	StartDate *time.Time
	EndDate   *time.Time
	Column    SortColumn
	Direction SortDirection
}

// NewListFilter interprets raw filter strings (as carried in the session).
// Dates accept YYYY-MM-DD or RFC 3339; unparsable dates are treated as absent.
// Column and direction fall back to their whitelist defaults.
func NewListFilter(searched, startDate, endDate, column, direction string) ListFilter {
	return ListFilter{
		Searched:  searched,
		StartDate: parseDate(startDate),
		EndDate:   parseDate(endDate),
		Column:    SortingColumn(column),
		Direction: SortingDirection(direction),
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}
