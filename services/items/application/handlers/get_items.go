package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/session"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
	"github.com/ghuser/itemboard/services/items/domain/models"
)

// indexView is the page payload for the items index.
type indexView struct {
	Filters session.Filters
	Items   []itemView
}

// GetItemsHandler handles GET /items: the filtered, sorted item list.
type GetItemsHandler struct {
	base
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *GetItemsHandler {
	return &GetItemsHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute merges any filter params on this request into the session, then
// lists items using the resulting session-held filter state. Params present on
// the request overwrite stored values (an empty value clears that filter);
// absent params leave the stored state untouched.
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sess := h.session(r)

	dirty := session.MergeParams(sess, r.URL.Query())
	notice := session.PopNotice(sess)
	if dirty || notice != "" {
		h.saveSession(w, r, sess)
	}

	filters := session.LoadFilters(sess)
	filter := models.NewListFilter(
		filters.Searched,
		filters.StartDate,
		filters.EndDate,
		filters.SortingColumn,
		filters.SortingDirection,
	)

	items, err := h.svc.Item.List(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, newItemView(it))
	}

	h.renderPage(w, r, http.StatusOK, "items/index", &web.ViewData{
		Title:  "Items",
		Notice: notice,
		Data: indexView{
			Filters: filters,
			Items:   views,
		},
	})
}
