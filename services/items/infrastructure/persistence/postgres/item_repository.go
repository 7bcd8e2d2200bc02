package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemboard/pkg/database"
	"github.com/ghuser/itemboard/pkg/events"
	itemdomain "github.com/ghuser/itemboard/services/items/domain"
	domainevents "github.com/ghuser/itemboard/services/items/domain/events"
	"github.com/ghuser/itemboard/services/items/domain/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Lifecycle events are published through the outbox within the same
// transaction as the write, so no event exists without its row change.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. A nil bus disables event publishing (used in tests).
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes item.created within the same
// transaction. The store assigns id and both timestamps; they are written back
// onto the aggregate. Returns ErrDuplicateTitle on unique-title violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO items (title, description) VALUES ($1, $2)
			 RETURNING id, created_at, updated_at`,
			item.Title.String(), item.Description,
		).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", itemdomain.ErrDuplicateTitle, item.Title.String())
			}
			return fmt.Errorf("insert item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemCreated, item)
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, selectItemColumns+" WHERE id = $1", id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Find runs the composed list query for the given filter.
func (r *ItemRepository) Find(ctx context.Context, filter models.ListFilter) ([]*models.Item, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update persists title/description changes to an existing Item, refreshing
// updated_at. Publishes item.updated within the same transaction.
// Returns ErrItemNotFound for missing ids and ErrDuplicateTitle when the new
// title collides with another row.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`UPDATE items SET title = $1, description = $2, updated_at = now()
			 WHERE id = $3
			 RETURNING updated_at`,
			item.Title.String(), item.Description, item.ID,
		).Scan(&item.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return itemdomain.ErrItemNotFound
			}
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %q", itemdomain.ErrDuplicateTitle, item.Title.String())
			}
			return fmt.Errorf("update item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemUpdated, item)
	})
}

// Delete removes an item by ID and publishes item.deleted with the last-known
// snapshot. Returns ErrItemNotFound for missing ids.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		snapshot := models.Item{ID: id}
		var title string
		err := tx.QueryRowContext(ctx,
			`DELETE FROM items WHERE id = $1
			 RETURNING title, coalesce(description, ''), created_at, updated_at`,
			id,
		).Scan(&title, &snapshot.Description, &snapshot.CreatedAt, &snapshot.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return itemdomain.ErrItemNotFound
			}
			return fmt.Errorf("delete item: %w", err)
		}
		snapshot.Title = models.ItemTitle(title)

		return r.publish(tx, domainevents.TopicItemDeleted, &snapshot)
	})
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, item *models.Item) error {
	if r.bus == nil {
		return nil
	}

	event := domainevents.ItemEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      item.ID,
		Title:       item.Title.String(),
		Description: item.Description,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// scanItem maps one row onto a domain Item. Works for both QueryRow and rows
// iteration via the shared Scan signature.
func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var (
		item  models.Item
		title string
	)
	if err := row.Scan(&item.ID, &title, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Title = models.ItemTitle(title)
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
