package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	apiMiddleware := standardMiddleware.Append(makeResponseJSON)

	apiMux := pat.New()

	// Items
	apiMux.Get("/api/items", apiMiddleware.ThenFunc(app.itemHandler.GetItems))
	apiMux.Post("/api/items", apiMiddleware.ThenFunc(app.itemHandler.CreateItem))
	apiMux.Post("/api/update", apiMiddleware.ThenFunc(app.itemHandler.UpdatePrices))

	// Shared lists
	apiMux.Post("/api/share", apiMiddleware.ThenFunc(app.sharedListHandler.ShareList))
	apiMux.Get("/api/share/:id", apiMiddleware.ThenFunc(app.sharedListHandler.GetSharedList))

	// pat's "/" pattern matches only the literal root, so the builder
	// and buyer pages and their scripts go through a stdlib mux instead:
	// everything under /api/ hits the pat routes, everything else is a
	// static file.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiMux)
	mux.Handle("/", standardMiddleware.Then(http.FileServer(http.Dir(app.cfg.Static.Dir))))

	return mux
}
