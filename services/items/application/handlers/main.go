// Package handlers contains the HTTP page handlers for the items service.
// Each operation gets its own handler struct with an Execute method; shared
// plumbing (session access, id parsing, view models) lives here.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/session"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
	itemdomain "github.com/ghuser/itemboard/services/items/domain"
	"github.com/ghuser/itemboard/services/items/domain/models"
)

// ItemForm is the submitted form payload for create and update. Field names
// in error maps follow the form tag.
type ItemForm struct {
	Title       string `form:"title" validate:"required,min=5"`
	Description string `form:"description"`
}

func parseItemForm(r *http.Request) ItemForm {
	return ItemForm{
		Title:       r.PostFormValue("item[title]"),
		Description: r.PostFormValue("item[description]"),
	}
}

// itemView is the template-facing shape of an item.
type itemView struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newItemView(it *models.Item) itemView {
	return itemView{
		ID:          it.ID,
		Title:       it.Title.String(),
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// formView feeds the shared item form partial: where to submit, which verb to
// tunnel through _method, and the current field values to echo back.
type formView struct {
	Action string
	Method string
	Item   itemView
}

// base carries the dependencies every page handler needs.
type base struct {
	svc      *appsvcs.Services
	store    sessions.Store
	renderer *web.Renderer
	log      logger.Logger
}

// session loads the request session. Decode failures (stale or tampered
// cookies) yield a fresh session, so the error is logged and not returned.
func (b base) session(r *http.Request) *sessions.Session {
	s, err := b.store.Get(r, session.Name)
	if err != nil {
		b.log.WarnContext(r.Context(), "session decode failed", "error", err)
	}
	return s
}

// saveSession persists the session. Must run before the response body is
// written so the Set-Cookie header can still go out.
func (b base) saveSession(w http.ResponseWriter, r *http.Request, s *sessions.Session) {
	if err := s.Save(r, w); err != nil {
		b.log.ErrorContext(r.Context(), "session save failed", "error", err)
	}
}

// renderPage renders a template page; a render failure takes the 500 path.
// The renderer buffers output, so nothing has been written when it fails.
func (b base) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data *web.ViewData) {
	if err := b.renderer.Render(w, status, page, data); err != nil {
		errhttp.WriteError(w, r, b.log, err)
	}
}

// itemID parses the :id route parameter. Non-numeric ids are indistinguishable
// from missing records to the client, so they map to ErrItemNotFound.
func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, itemdomain.ErrItemNotFound
	}
	return id, nil
}

// validationMessage turns a domain validation error into the message shown
// next to the title field.
func validationMessage(err error) string {
	if errors.Is(err, itemdomain.ErrDuplicateTitle) {
		return "Title has already been taken"
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}
