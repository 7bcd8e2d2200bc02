package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// EditItemHandler handles GET /items/{id}/edit: the pre-filled edit form.
type EditItemHandler struct {
	base
}

// NewEditItemHandler returns an EditItemHandler backed by the given services.
func NewEditItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *EditItemHandler {
	return &EditItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute renders the edit form for an existing item, tunnelling PATCH
// through the _method field.
func (h *EditItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	h.renderPage(w, r, http.StatusOK, "items/edit", &web.ViewData{
		Title: "Edit item",
		Data: formView{
			Action: fmt.Sprintf("/items/%d", item.ID),
			Method: "patch",
			Item:   newItemView(item),
		},
	})
}
