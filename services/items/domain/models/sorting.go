package models

// SortColumn is a whitelisted column the item list can be ordered by.
// Only values produced by SortingColumn are safe to interpolate into SQL.
type SortColumn string

// SortDirection is a whitelisted ORDER BY direction.
type SortDirection string

const (
	SortByUpdatedAt SortColumn = "updated_at"
	SortByTitle     SortColumn = "title"
	SortByCreatedAt SortColumn = "created_at"

	SortDescending SortDirection = "desc"
	SortAscending  SortDirection = "asc"
)

// SortingColumn validates a user-supplied column name against the whitelist.
// Anything unrecognized falls back to updated_at. User input must never reach
// an ORDER BY clause except through this function.
func SortingColumn(s string) SortColumn {
	switch SortColumn(s) {
	case SortByUpdatedAt, SortByTitle, SortByCreatedAt:
		return SortColumn(s)
	default:
		return SortByUpdatedAt
	}
}

// SortingDirection validates a user-supplied direction, defaulting to descending.
func SortingDirection(s string) SortDirection {
	switch SortDirection(s) {
	case SortDescending, SortAscending:
		return SortDirection(s)
	default:
		return SortDescending
	}
}
