package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	platformmetrics "speakerreg/internal/platform/metrics"
	"speakerreg/internal/platform/middleware"
	speakerhandler "speakerreg/internal/speaker/handler"
	"speakerreg/pkg/platform/httputil"
)

type routerDeps struct {
	logger      *slog.Logger
	service     speakerhandler.Service
	adminToken  string
	registry    *prometheus.Registry
	httpMetrics *platformmetrics.Metrics
	health      func(ctx context.Context) error
}

// newRouter mounts the middleware chain, speaker routes, /metrics and /healthz.
// Every request runs inside an otelhttp server span.
func newRouter(deps routerDeps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(deps.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.ClientMetadata)
	router.Use(middleware.Logger(deps.logger))
	router.Use(middleware.LatencyMiddleware(deps.httpMetrics))

	speakerhandler.New(deps.service, deps.logger, deps.adminToken).Register(router)

	router.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.health(r.Context()); err != nil {
			deps.logger.WarnContext(r.Context(), "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return otelhttp.NewHandler(router, "speakerreg")
}
