package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/futebolada/futebolada-server/handler/token"
	"github.com/futebolada/futebolada-server/service"
)

type Handler struct {
	s      *http.Server
	router chi.Router
	srv    *service.Service
	token  token.Handler
}

func New(srv *service.Service, tokenHandler token.Handler) *Handler {
	h := &Handler{
		router: chi.NewRouter(),
		srv:    srv,
		token:  tokenHandler,
	}
	h.setup()
	return h
}

func (h *Handler) Start(port string) error {
	h.s = &http.Server{Addr: ":" + port, Handler: h.router}
	return h.s.ListenAndServe()
}

func (h *Handler) Stop(ctx context.Context) error {
	return h.s.Shutdown(ctx)
}

func (h *Handler) setup() {
	r := h.router
	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/admin/login", h.adminLogin)
		r.Post("/players/login", h.playerLogin)
		r.Get("/players", h.players)
		r.Get("/weeks", h.weeks)
		r.Get("/weeks/{id}", h.week)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Get("/player", h.currentPlayer)
		r.Put("/players/password-change", h.changePassword)

		// Full-admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.requireFullAdmin)

			r.Post("/admin/register", h.register)
			r.Delete("/admin/{id}", h.deleteAdmin)
			r.Put("/players/{id}/password-reset", h.resetPassword)
			r.Post("/weeks", h.createWeek)
		})
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// created writes a 201 response; resp.JSON is fixed at 200.
func created(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}
