package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slices"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)

	mux.Post("/api/v1/users", app.handleCreateUser)
	mux.Get("/api/v1/users", app.handleListUsers)
	mux.Get("/api/v1/users/{userId}", app.handleGetUser)
	mux.Put("/api/v1/users/{userId}", app.handleUpdateUser)
	mux.Delete("/api/v1/users/{userId}", app.handleDeleteUser)
	mux.Get("/api/v1/users/{userId}/badge", app.handleUserBadge)

	mux.Post("/api/v1/history", app.handleCreateHistory)
	mux.Get("/api/v1/history", app.handleQueryHistory)

	mux.Post("/api/v1/registrations", app.handleRegister)
	mux.Post("/api/v1/registrations/scan", app.handleRegisterScan)

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	slices.Sort(parsedRoutes)
	return parsedRoutes
}
