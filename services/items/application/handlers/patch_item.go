package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/itemboard/pkg/errhttp"
	"github.com/ghuser/itemboard/pkg/logger"
	"github.com/ghuser/itemboard/pkg/session"
	pkgvalidator "github.com/ghuser/itemboard/pkg/validator"
	"github.com/ghuser/itemboard/pkg/web"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// PatchItemHandler handles PATCH and PUT /items/{id}: item updates from the
// HTML edit form.
type PatchItemHandler struct {
	base
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services, store sessions.Store, renderer *web.Renderer, log logger.Logger) *PatchItemHandler {
	return &PatchItemHandler{base{svc: svc, store: store, renderer: renderer, log: log}}
}

// Execute applies the submitted form to an existing item. Missing ids answer
// 404, validation failures re-render the edit form with 422, and success
// queues a flash notice and redirects 303 to the item page.
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	form := parseItemForm(r)

	if err := pkgvalidator.Validate(form); err != nil {
		h.rerender(w, r, id, form, pkgvalidator.FormatValidationErrors(err))
		return
	}

	if _, err := h.svc.Item.Update(r.Context(), id, form.Title, form.Description); err != nil {
		if errhttp.IsValidation(err) {
			h.rerender(w, r, id, form, map[string]string{"title": validationMessage(err)})
			return
		}
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	sess := h.session(r)
	session.AddNotice(sess, "Item was successfully updated.")
	h.saveSession(w, r, sess)

	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

func (h *PatchItemHandler) rerender(w http.ResponseWriter, r *http.Request, id int64, form ItemForm, errs map[string]string) {
	h.renderPage(w, r, http.StatusUnprocessableEntity, "items/edit", &web.ViewData{
		Title:  "Edit item",
		Errors: errs,
		Data: formView{
			Action: fmt.Sprintf("/items/%d", id),
			Method: "patch",
			Item:   itemView{ID: id, Title: form.Title, Description: form.Description},
		},
	})
}
