package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(middleware.Compress(compressionLevel))

	router.Get("/", h.healthCheck)
	router.Get("/api", h.callDemoAPI)
	router.Post("/nin-details", h.ninDetails)
	router.Get("/version", h.getVersion)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

	// unknown routes and unsupported methods share the same answer
	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.corsAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	}
}
