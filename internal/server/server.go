// Package server provides the HTTP surface of the analysis engine: health,
// session history, the camera stream, and live results over WebSocket.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/abhinaya/internal/capture"
	"github.com/ayusman/abhinaya/internal/server/api"
	"github.com/ayusman/abhinaya/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Results   *ResultsHub
}

// Server routes HTTP requests for the application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a Server with the given configuration. Endpoints whose
// dependencies are missing are simply not registered.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		sessionHandler := api.NewSessionHandler(s.config.Store)
		eventsHandler := api.NewEventsHandler(s.config.Store)

		// /api/sessions/{id}/events belongs to the events handler
		sessionRouter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/events") {
				eventsHandler.ServeHTTP(w, r)
				return
			}
			sessionHandler.ServeHTTP(w, r)
		})

		s.mux.Handle("/api/sessions", sessionRouter)
		s.mux.Handle("/api/sessions/", sessionRouter)
		s.mux.Handle("/api/events", eventsHandler)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.Results != nil {
		s.mux.Handle("/api/results", s.config.Results)
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
