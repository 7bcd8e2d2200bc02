// Package memory provides an in-memory ItemRepository with the same observable
// semantics as the PostgreSQL implementation. Used by service and handler
// tests that do not need a real database.
//
// One deliberate approximation: the description predicate is a
// case-insensitive substring match rather than stemmed full-text search.
// Stemming behavior is covered by the postgres integration suite.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	itemdomain "github.com/ghuser/itemboard/services/items/domain"
	"github.com/ghuser/itemboard/services/items/domain/models"
)

// Clock supplies timestamps, injectable for tests.
type Clock func() time.Time

// ItemRepository is a concurrency-safe in-memory item store.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Item
	nextID int64
	clock  Clock
}

// Option configures an ItemRepository.
type Option func(*ItemRepository)

// WithClock sets the timestamp source.
func WithClock(c Clock) Option {
	return func(r *ItemRepository) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewItemRepository returns an empty in-memory repository.
func NewItemRepository(opts ...Option) *ItemRepository {
	r := &ItemRepository{
		items: make(map[int64]models.Item),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save assigns an id and timestamps, enforcing case-sensitive title uniqueness.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Title == item.Title {
			return fmt.Errorf("%w: %q", itemdomain.ErrDuplicateTitle, item.Title.String())
		}
	}

	r.nextID++
	now := r.clock().UTC()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = *item
	return nil
}

// GetByID returns a copy of the stored item or ErrItemNotFound.
func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

// Find applies the filter predicates and sort, mirroring the SQL composition.
func (r *ItemRepository) Find(_ context.Context, filter models.ListFilter) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Item
	for _, item := range r.items {
		if matches(item, filter) {
			matched = append(matched, item)
		}
	}

	sortItems(matched, filter)

	out := make([]*models.Item, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}

// Update overwrites title/description and refreshes UpdatedAt.
func (r *ItemRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok {
		return itemdomain.ErrItemNotFound
	}

	for id, existing := range r.items {
		if id != item.ID && existing.Title == item.Title {
			return fmt.Errorf("%w: %q", itemdomain.ErrDuplicateTitle, item.Title.String())
		}
	}

	stored.Title = item.Title
	stored.Description = item.Description
	stored.UpdatedAt = r.clock().UTC()
	r.items[item.ID] = stored

	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes the item or returns ErrItemNotFound.
func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return itemdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

// Touch backdates an item's timestamps directly. Test helper for exercising
// date-range filters and sort orders with deterministic clocks.
func (r *ItemRepository) Touch(id int64, createdAt, updatedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, ok := r.items[id]; ok {
		item.CreatedAt = createdAt
		item.UpdatedAt = updatedAt
		r.items[id] = item
	}
}

func matches(item models.Item, f models.ListFilter) bool {
	if f.Searched != "" {
		title := strings.ToLower(item.Title.String())
		desc := strings.ToLower(item.Description)
		needle := strings.ToLower(f.Searched)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}
	if f.StartDate != nil && item.UpdatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && item.UpdatedAt.After(*f.EndDate) {
		return false
	}
	return true
}

func sortItems(items []models.Item, f models.ListFilter) {
	column := models.SortingColumn(string(f.Column))
	direction := models.SortingDirection(string(f.Direction))

	sort.SliceStable(items, func(i, j int) bool {
		var less bool
		switch column {
		case models.SortByTitle:
			less = items[i].Title < items[j].Title
		case models.SortByCreatedAt:
			less = items[i].CreatedAt.Before(items[j].CreatedAt)
		default:
			less = items[i].UpdatedAt.Before(items[j].UpdatedAt)
		}
		if direction == models.SortDescending {
			return !less && !equalKey(items[i], items[j], column)
		}
		return less
	})
}

func equalKey(a, b models.Item, column models.SortColumn) bool {
	switch column {
	case models.SortByTitle:
		return a.Title == b.Title
	case models.SortByCreatedAt:
		return a.CreatedAt.Equal(b.CreatedAt)
	default:
		return a.UpdatedAt.Equal(b.UpdatedAt)
	}
}
