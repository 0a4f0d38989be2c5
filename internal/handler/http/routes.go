package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zerovault/zero-vault/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(middleware.Recoverer)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind the session check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/auth/logout", h.logout)
		r.Get("/vaults", h.listVaults)
		r.Post("/vaults", h.createVault)
		r.Get("/vaults/{vaultID}", h.getVault)
		r.Put("/vaults/{vaultID}", h.updateVault)
		r.Delete("/vaults/{vaultID}", h.deleteVault)
	})

	// every unmatched path or method answers 404, never 405
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, app.MsgNotFound, http.StatusNotFound)
}
