package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the page, the form endpoints and the JSON API.
func NewRouter(h *TaskHandler) chi.Router {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Get("/", h.Page)
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.SubmitCreate)
		r.Post("/{id}/toggle", h.SubmitToggle)
		r.Post("/{id}/delete", h.SubmitDelete)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Toggle)
		r.Delete("/{id}", h.Delete)
	})
	r.Get("/api/progress", h.Progress)

	return r
}
