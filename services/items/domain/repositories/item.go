package repositories

import (
	"context"

	"github.com/ghuser/itemboard/services/items/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations return domain.ErrItemNotFound for missing ids and
// domain.ErrDuplicateTitle for unique-title violations.
type ItemRepository interface {
	// Save persists a new Item and fills in its store-assigned ID and timestamps.
	Save(ctx context.Context, item *models.Item) error

	// GetByID retrieves a single item.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Find runs the composed list query: combined title/description search AND
	// the updated_at bounds, ordered by the filter's whitelisted sort.
	Find(ctx context.Context, filter models.ListFilter) ([]*models.Item, error)

	// Update persists changes to an existing Item and refreshes its UpdatedAt.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id int64) error
}
