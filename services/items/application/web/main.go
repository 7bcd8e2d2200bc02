package web

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemboard/pkg/app"
	"github.com/ghuser/itemboard/services/items/application/handlers"
	appsvcs "github.com/ghuser/itemboard/services/items/application/services"
)

// ItemRoutes registers the item pages on the provided chi router. The static
// /items/new route is registered before /items/{id} so "new" never parses as
// an id.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	list := handlers.NewGetItemsHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	show := handlers.NewGetItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	newForm := handlers.NewNewItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	create := handlers.NewPostItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	editForm := handlers.NewEditItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	update := handlers.NewPatchItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)
	destroy := handlers.NewDeleteItemHandler(svcs, a.SessionStore, a.Renderer, a.Logger)

	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", list.Execute)
			r.Post("/", create.Execute)
			r.Get("/new", newForm.Execute)
			r.Get("/{id}", show.Execute)
			r.Get("/{id}/edit", editForm.Execute)
			r.Patch("/{id}", update.Execute)
			r.Put("/{id}", update.Execute)
			r.Delete("/{id}", destroy.Execute)
		})
	})
}
