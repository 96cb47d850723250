// Package ui exposes the pipeline over HTTP: a JSON run endpoint for
// orchestration layers that drive the core remotely.
package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"randlab/app"
)

// App is the HTTP application
type App struct {
	router   *chi.Mux
	pipeline *app.PipelineService
}

// NewApp creates the HTTP application and mounts its routes
func NewApp(pipeline *app.PipelineService) *App {
	a := &App{
		router:   chi.NewRouter(),
		pipeline: pipeline,
	}

	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/api/runs", a.handleCreateRun)

	return a
}

// Router returns the mounted handler
func (a *App) Router() http.Handler {
	return a.router
}

// Start blocks serving HTTP on the given port
func (a *App) Start(port string) error {
	log.Printf("randlab API listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
