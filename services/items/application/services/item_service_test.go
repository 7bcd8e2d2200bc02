package services

import (
	"context"
	"errors"
	"testing"

	itemdomain "github.com/ghuser/itemboard/services/items/domain"
	"github.com/ghuser/itemboard/services/items/domain/models"
	"github.com/ghuser/itemboard/services/items/infrastructure/persistence/memory"
)

func newTestService() (*ItemService, *memory.ItemRepository) {
	repo := memory.NewItemRepository()
	return NewItemService(repo, nil), repo
}

func TestItemService_Create(t *testing.T) {
	t.Run("valid input persists", func(t *testing.T) {
		svc, _ := newTestService()
		item, err := svc.Create(context.Background(), "Weekly groceries", "milk and eggs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == 0 {
			t.Fatal("expected assigned id")
		}
		if item.Title.String() != "Weekly groceries" {
			t.Fatalf("expected title to round-trip, got %q", item.Title)
		}
	})

	t.Run("blank title wraps ErrInvalidTitle", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(context.Background(), "   ", "")
		if !errors.Is(err, itemdomain.ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("short title wraps ErrInvalidTitle", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(context.Background(), "abcd", "")
		if !errors.Is(err, itemdomain.ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("duplicate title surfaces ErrDuplicateTitle", func(t *testing.T) {
		svc, _ := newTestService()
		if _, err := svc.Create(context.Background(), "Weekly groceries", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := svc.Create(context.Background(), "Weekly groceries", "again")
		if !errors.Is(err, itemdomain.ErrDuplicateTitle) {
			t.Fatalf("expected ErrDuplicateTitle, got %v", err)
		}
	})
}

func TestItemService_GetByID(t *testing.T) {
	svc, _ := newTestService()
	item, err := svc.Create(context.Background(), "Stored item", "desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != item.ID {
			t.Fatalf("expected id %d, got %d", item.ID, got.ID)
		}
	})

	t.Run("missing wraps ErrItemNotFound", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 9999)
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_List(t *testing.T) {
	svc, _ := newTestService()
	for _, title := range []string{"Apple pie", "Banana bread", "Cherry cake"} {
		if _, err := svc.Create(context.Background(), title, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, err := svc.List(context.Background(), models.NewListFilter("banana", "", "", "", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title.String() != "Banana bread" {
		t.Fatalf("expected single banana match, got %d items", len(items))
	}
}

func TestItemService_Update(t *testing.T) {
	svc, _ := newTestService()
	item, err := svc.Create(context.Background(), "Before edit", "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("valid update applies", func(t *testing.T) {
		got, err := svc.Update(context.Background(), item.ID, "After edit", "new")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title.String() != "After edit" || got.Description != "new" {
			t.Fatalf("update not applied: %+v", got)
		}
	})

	t.Run("invalid title wraps ErrInvalidTitle", func(t *testing.T) {
		_, err := svc.Update(context.Background(), item.ID, "abc", "")
		if !errors.Is(err, itemdomain.ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("missing id wraps ErrItemNotFound", func(t *testing.T) {
		_, err := svc.Update(context.Background(), 9999, "Valid title", "")
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	svc, _ := newTestService()
	item, err := svc.Create(context.Background(), "Doomed item", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), item.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), 9999); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for missing id, got %v", err)
	}
}
