package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ItemTitle is a value object representing a valid item title.
// Encapsulates validation rules: present (not blank) and at least 5 characters.
// Uniqueness is a store-level constraint, enforced by the repository.
type ItemTitle string

const minTitleLength = 5

// NewItemTitle constructs a valid ItemTitle or returns an error if constraints are violated.
func NewItemTitle(s string) (ItemTitle, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("title must not be blank")
	}
	if utf8.RuneCountInString(s) < minTitleLength {
		return "", fmt.Errorf("title must be at least %d characters", minTitleLength)
	}
	return ItemTitle(s), nil
}

// String returns the underlying string value.
func (t ItemTitle) String() string {
	return string(t)
}
