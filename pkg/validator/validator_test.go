package validator

import (
	"errors"
	"testing"
)

type itemForm struct {
	Title       string `form:"title" validate:"required,min=5"`
	Description string `form:"description"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		if err := Validate(itemForm{Title: "Valid title"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing required field fails", func(t *testing.T) {
		if err := Validate(itemForm{}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("short field fails", func(t *testing.T) {
		if err := Validate(itemForm{Title: "abc"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestFormatValidationErrors(t *testing.T) {
	t.Run("uses form tag as field name", func(t *testing.T) {
		err := Validate(itemForm{})
		errs := FormatValidationErrors(err)
		if msg, ok := errs["title"]; !ok || msg != "This field is required" {
			t.Fatalf("expected required message under form field name, got %v", errs)
		}
	})

	t.Run("min message carries the bound", func(t *testing.T) {
		err := Validate(itemForm{Title: "abc"})
		errs := FormatValidationErrors(err)
		if errs["title"] != "Minimum length is 5" {
			t.Fatalf("expected min message, got %v", errs)
		}
	})

	t.Run("non-validation error yields empty map", func(t *testing.T) {
		errs := FormatValidationErrors(errors.New("db down"))
		if len(errs) != 0 {
			t.Fatalf("expected empty map, got %v", errs)
		}
	})
}
