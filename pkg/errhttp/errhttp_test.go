package errhttp

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/itemboard/pkg/config"
	"github.com/ghuser/itemboard/pkg/logger"
	itemdomain "github.com/ghuser/itemboard/services/items/domain"
)

func newTestLogger(buf *bytes.Buffer) logger.Logger {
	return logger.NewWithWriter(&config.Config{LogLevel: "info"}, buf)
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrInvalidTitle", itemdomain.ErrInvalidTitle, true},
		{"ErrDuplicateTitle", itemdomain.ErrDuplicateTitle, true},
		{"wrapped ErrInvalidTitle", fmt.Errorf("%w: too short", itemdomain.ErrInvalidTitle), true},
		{"wrapped ErrDuplicateTitle", fmt.Errorf("save item: %w", itemdomain.ErrDuplicateTitle), true},
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, false},
		{"unknown error", errors.New("db down"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Fatalf("IsValidation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWriteError_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"bare sentinel", itemdomain.ErrItemNotFound},
		{"wrapped sentinel", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/items/42", nil)

			WriteError(w, r, newTestLogger(buf), tt.err)

			if w.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", w.Code)
			}
			if w.Body.String() != NotFoundMessage {
				t.Fatalf("expected %q, got %q", NotFoundMessage, w.Body.String())
			}
			if buf.Len() != 0 {
				t.Fatalf("404 must not log, got: %s", buf.String())
			}
		})
	}
}

func TestWriteError_Internal(t *testing.T) {
	buf := &bytes.Buffer{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/items", nil)

	WriteError(w, r, newTestLogger(buf), errors.New("connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != InternalErrorMessage {
		t.Fatalf("expected %q, got %q", InternalErrorMessage, w.Body.String())
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Fatalf("expected exactly one log record, got %d:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "connection refused") {
		t.Fatalf("log record must carry the original error, got: %s", buf.String())
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatal("raw error detail must not reach the client")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/items", nil)
	WriteError(w, r, newTestLogger(&bytes.Buffer{}), itemdomain.ErrItemNotFound)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain content type, got %q", ct)
	}
}
