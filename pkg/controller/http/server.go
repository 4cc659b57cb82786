package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the dashboard API
func NewServer(ctx context.Context, addr string, resilienceUC interfaces.Resilience) (*Server, error) {
	if resilienceUC == nil {
		return nil, goerr.New("resilience use case is required")
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(CORS)
	router.Use(middleware.Recoverer)

	handler := NewDashboardHandler(resilienceUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", handler.HandleDashboard)
		r.Post("/refresh", handler.HandleRefresh)
		r.Post("/query", handler.HandleQuery)
		r.Post("/simulate-departure", handler.HandleSimulateDeparture)
		r.Post("/recommend-onboarding", handler.HandleRecommendOnboarding)
	})

	// Anything else gets the plain landing page
	router.Get("/*", handleHome)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "mnemosyne",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleHome handles the root path for browsers poking at the service
func handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Mnemosyne</title>
</head>
<body>
    <h1>Mnemosyne</h1>
    <p>Organizational knowledge resilience gateway</p>
    <p>Dashboard data: <a href="/api/dashboard">/api/dashboard</a></p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write home page", "error", err)
	}
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
