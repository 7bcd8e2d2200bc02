package models

import "time"

// Item is the sole aggregate of this bounded context: a titled record with an
// optional free-text description. ID and both timestamps are assigned by the
// store on save; UpdatedAt is refreshed by the store on every update.
type Item struct {
	ID          int64
	Title       ItemTitle
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs an unsaved Item aggregate. The store assigns ID and
// timestamps when the item is persisted.
func NewItem(title ItemTitle, description string) *Item {
	return &Item{
		Title:       title,
		Description: description,
	}
}

// Apply replaces the mutable fields from a validated submission. Used on the
// update path; timestamps stay store-owned.
func (i *Item) Apply(title ItemTitle, description string) {
	i.Title = title
	i.Description = description
}
