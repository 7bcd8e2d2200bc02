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

// showView is the page payload for the item detail page.
type showView struct {
	Item itemView
}

// GetItemHandler handles GET /items/{id}.
type GetItemHandler struct {
	base
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute renders a single item. Unknown and non-numeric ids both answer 404.
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	sess := h.session(r)
	notice := session.PopNotice(sess)
	if notice != "" {
		h.saveSession(w, r, sess)
	}

	h.renderPage(w, r, http.StatusOK, "items/show", &web.ViewData{
		Title:  item.Title.String(),
		Notice: notice,
		Data:   showView{Item: newItemView(item)},
	})
}
