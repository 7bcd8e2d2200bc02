package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published on item lifecycle transitions.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEvent is published after an item is created, updated, or deleted.
// The same payload shape is used for all three topics; Deleted events carry
// the last-known snapshot of the row.
type ItemEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      int64     `json:"item_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}
