package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/itemboard/pkg/cache"
	itemdomain "github.com/ghuser/itemboard/services/items/domain"
	"github.com/ghuser/itemboard/services/items/domain/models"
	"github.com/ghuser/itemboard/services/items/domain/repositories"
)

// ItemService orchestrates creation, retrieval, mutation, and deletion of
// Items. Event publishing is handled by the repository layer (outbox pattern).
// Single-item reads are served from the Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and
// cache. A nil cache disables read-through caching (used in tests).
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists a new Item from the submitted title and
// description. Returns ErrInvalidTitle-wrapped errors for constraint failures
// and ErrDuplicateTitle (from the repository) for title collisions.
func (s *ItemService) Create(ctx context.Context, title, description string) (*models.Item, error) {
	itemTitle, err := models.NewItemTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidTitle, err)
	}

	item := models.NewItem(itemTitle, description)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		// Misses and cache errors both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:          cached.ID,
				Title:       models.ItemTitle(cached.Title),
				Description: cached.Description,
				CreatedAt:   cached.CreatedAt,
				UpdatedAt:   cached.UpdatedAt,
			}, nil
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:          item.ID,
				Title:       item.Title.String(),
				Description: item.Description,
				CreatedAt:   item.CreatedAt,
				UpdatedAt:   item.UpdatedAt,
			})
		}()
	}

	return item, nil
}

// List runs the composed filtered/sorted query and returns the matching items.
func (s *ItemService) List(ctx context.Context, filter models.ListFilter) ([]*models.Item, error) {
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update validates and applies the submitted title/description to an existing
// Item. Returns ErrItemNotFound for missing ids, ErrInvalidTitle or
// ErrDuplicateTitle for constraint failures. The cache entry is invalidated
// after a successful write.
func (s *ItemService) Update(ctx context.Context, id int64, title, description string) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	itemTitle, err := models.NewItemTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidTitle, err)
	}

	item.Apply(itemTitle, description)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return item, nil
}

// Delete removes an item by ID. Returns ErrItemNotFound if no matching item
// exists. The cache entry is invalidated after a successful delete.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
