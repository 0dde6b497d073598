// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/port-twin/internal/config"
	"github.com/tomtom215/port-twin/internal/manager"
	"github.com/tomtom215/port-twin/internal/metrics"
)

// RouterConfig tunes the cross-cutting middleware wrapped around the route
// table. Empty CORSAllowedOrigins lets every origin read responses
// (go-chi/cors then allows "*"); the API carries no
// authentication of its own, so CORS here only controls which browser
// contexts may read it, not who may call it.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

// DefaultRouterConfig returns a permissive-read, lightly-rate-limited
// configuration suitable for an internal dashboard consumer.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitRequests:  120,
		RateLimitWindow:    time.Minute,
	}
}

// NewRouter builds the chi router serving the vessel read API.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestMetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if cfg.RateLimitRequests > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	r.Get("/vessels", h.handleVessels)
	r.Get("/vessels/{feed}", h.handleVesselFrame)
	r.Get("/analysis", h.handleAnalysis)
	r.Get("/status", h.handleStatus)
	r.Get("/quality", h.handleQuality)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// NewServer builds an *http.Server serving NewRouter's routes, ready to be
// handed to services.NewHTTPServerService for supervision.
func NewServer(mgr *manager.Manager, serverCfg config.ServerConfig, defaultMaxAge time.Duration) *http.Server {
	h := NewHandler(mgr, defaultMaxAge)
	return &http.Server{
		Addr:         serverCfg.Addr(),
		Handler:      NewRouter(h, DefaultRouterConfig()),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
	}
}

// requestMetricsMiddleware records every request's outcome and latency via
// metrics.RecordAPIRequest, keyed by the chi route pattern rather than the
// raw path so per-vessel-feed paths don't create unbounded label cardinality.
func requestMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(status), time.Since(start))
	})
}
