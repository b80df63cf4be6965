package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewSlogLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/user", func(r chi.Router) {
		r.Post("/", h.handleRegisterUser)
		r.Put("/", h.handleUpdateUser)
		r.Get("/{id}", h.handleGetUser)
		r.Delete("/{id}", h.handleDeleteUser)
		r.Post("/{id}/upgrade", h.handleUpgradeUser)
		r.Post("/{id}/downgrade", h.handleDowngradeUser)
	})

	r.Route("/club", func(r chi.Router) {
		r.Post("/", h.handleCreateClub)
		r.Post("/{id}/members", h.handleJoinClub)
		r.Get("/recommendations", h.handleRecommendClubs)
	})

	r.Get("/health", h.handleHealthCheck)

	return r
}

func (h *Handler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
