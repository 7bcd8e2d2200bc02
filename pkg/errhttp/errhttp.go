// Package errhttp maps domain sentinel errors to HTTP outcomes.
//
// Three outcome classes exist, applied identically at every handler boundary:
// validation failures re-render the originating form (the handler's job, via
// IsValidation), missing records get the fixed 404 body, and everything else
// gets the fixed 500 body with the full error logged exactly once. No raw
// error detail ever reaches the client on the 404/500 paths.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemboard/pkg/httpx"
	"github.com/ghuser/itemboard/pkg/logger"
	itemdomain "github.com/ghuser/itemboard/services/items/domain"
)

// Fixed user-facing bodies. Tests match on these verbatim.
const (
	NotFoundMessage      = "ERROR 404: not found"
	InternalErrorMessage = "ERROR 500: internal server error"
)

// IsValidation reports whether err is a user-correctable validation failure
// that should take the 422 re-render path instead of WriteError.
func IsValidation(err error) bool {
	return errors.Is(err, itemdomain.ErrInvalidTitle) || errors.Is(err, itemdomain.ErrDuplicateTitle)
}

// WriteError writes the 404 or 500 outcome for err. Uses errors.Is() so
// wrapped sentinel errors are matched correctly. Unrecognized errors are
// logged with full detail and answered with the fixed 500 body.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		httpx.PlainText(w, http.StatusNotFound, NotFoundMessage)
		return
	}

	log.ErrorContext(r.Context(), "internal server error", "error", err)
	httpx.PlainText(w, http.StatusInternalServerError, InternalErrorMessage)
}
