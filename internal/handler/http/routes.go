package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)

		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.getProfile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Put("/api/users/change-password", h.changePassword)
		r.Delete("/api/users/delete", h.deleteAccount)

		r.Get("/api/users", h.listUsers)
		// the numeric constraint keeps sibling paths (e.g. /api/users/register
		// with a wrong method) out of this wildcard
		r.Get("/api/users/{id:[0-9]+}", h.getUserByID)
	})

	// stored profile pictures are served as static files
	pictures := http.StripPrefix(store.PicturesURLPrefix, http.FileServer(http.Dir(h.picturesDir)))
	router.Get(store.PicturesURLPrefix+"*", pictures.ServeHTTP)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "route not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
