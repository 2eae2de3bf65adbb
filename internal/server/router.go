package server

import (
	"arena-tracker/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func NewRouter(tracker *TrackerServer, reg *prometheus.Registry, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	path, handler := tracker.Handler()
	r.Mount(path, handler)

	r.Route("/api/v1/arena", func(r chi.Router) {
		r.Get("/{gameName}/{tagLine}/export.csv", tracker.ExportCSV)
	})

	return r
}
