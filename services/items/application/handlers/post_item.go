package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/session"
	pkgvalidator "github.com/ghuser/itemboard/pkg/validator"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// PostItemHandler handles POST /items: item creation from the HTML form.
type PostItemHandler struct {
	base
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute creates an item from the submitted form. Validation failures
// re-render the form with status 422 and the submitted values echoed back;
// success queues a flash notice and redirects 303 to the list.
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	form := parseItemForm(r)

	if err := pkgvalidator.Validate(form); err != nil {
		h.rerender(w, r, form, pkgvalidator.FormatValidationErrors(err))
		return
	}

	if _, err := h.svc.Item.Create(r.Context(), form.Title, form.Description); err != nil {
		if errhttp.IsValidation(err) {
			h.rerender(w, r, form, map[string]string{"title": validationMessage(err)})
			return
		}
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	sess := h.session(r)
	session.AddNotice(sess, "Item was successfully created.")
	h.saveSession(w, r, sess)

	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

func (h *PostItemHandler) rerender(w http.ResponseWriter, r *http.Request, form ItemForm, errs map[string]string) {
	h.renderPage(w, r, http.StatusUnprocessableEntity, "items/new", &web.ViewData{
		Title:  "New item",
		Errors: errs,
		Data: formView{
			Action: "/items",
			Item:   itemView{Title: form.Title, Description: form.Description},
		},
	})
}
