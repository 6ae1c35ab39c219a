package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	router.Use(h.withSession)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", healthz)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)

		r.Get("/blogs", h.listPosts)
		r.Get("/blogs/{id}", h.getPost)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/auth/me", h.me)

		r.Post("/blogs", h.createPost)
		r.Put("/blogs/{id}", h.updatePost)
		r.Delete("/blogs/{id}", h.deletePost)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
