package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/session"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// DeleteItemHandler handles DELETE /items/{id}.
type DeleteItemHandler struct {
	base
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *DeleteItemHandler {
	return &DeleteItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute deletes an item, queues a flash notice, and redirects 303 back to
// the list. Missing ids answer 404.
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	sess := h.session(r)
	session.AddNotice(sess, "Item was successfully destroyed.")
	h.saveSession(w, r, sess)

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}
