package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// NewItemHandler handles GET /items/new: the blank creation form.
type NewItemHandler struct {
	base
}

// NewNewItemHandler returns a NewItemHandler backed by the given services.
func NewNewItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *NewItemHandler {
	return &NewItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute renders an empty item form posting to the create endpoint.
func (h *NewItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, "items/new", &web.ViewData{
		Title: "New item",
		Data:  formView{Action: "/items"},
	})
}
