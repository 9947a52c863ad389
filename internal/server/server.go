// Package server provides the HTTP REST API for the portfolio backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/anilkumarravuri/portfolio-api/internal/config"
	"github.com/anilkumarravuri/portfolio-api/internal/store"
	"github.com/anilkumarravuri/portfolio-api/schemas"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	notifier   Notifier
	cfg        *config.Config
}

// New creates a new server instance around the given store.
func New(cfg *config.Config, st *store.Store) *Server {
	s := &Server{
		store:    st,
		notifier: &LogNotifier{Recipient: cfg.ContactRecipient},
		cfg:      cfg,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wired route handler, middleware included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Profile resource
	mux.HandleFunc("GET /api/profile/{$}", s.handleProfile)
	mux.HandleFunc("GET /api/profile/summary", s.handleProfileSummary)
	mux.HandleFunc("GET /api/profile/skills", s.handleProfileSkills)
	mux.HandleFunc("GET /api/profile/experience", s.handleProfileExperience)
	mux.HandleFunc("GET /api/profile/education", s.handleProfileEducation)

	// Certification resource
	mux.HandleFunc("GET /api/certifications/{$}", s.handleListCertifications)

	// Blog resource
	mux.HandleFunc("GET /api/blog/{$}", s.handleListPosts)
	mux.HandleFunc("GET /api/blog/{slug}", s.handleGetPost)

	// Contact
	mux.HandleFunc("POST /api/contact/{$}", s.handleContact)

	// Liveness markers
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request id
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		log.Printf("[%s] %s %s %s", reqID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleRoot returns the API liveness marker.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, "", map[string]string{
		"status":  "ok",
		"message": "Portfolio API is running",
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, "", map[string]string{"status": "healthy"})
}

// jsonResponse writes a JSON response. When a schema name is given and
// response validation is enabled, the encoded body is checked against the
// contract before anything is written; a violating body never leaves the
// process.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, schema string, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error encoding JSON response: %v", err)
		s.internalResponse(w)
		return
	}

	if schema != "" && s.cfg.ValidateResponses {
		if err := schemas.Validate(schema, body); err != nil {
			log.Printf("Response contract violation: %v", err)
			s.internalResponse(w)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// detailResponse writes an error JSON response in the {"detail": ...} shape.
func (s *Server) detailResponse(w http.ResponseWriter, status int, detail any) {
	s.jsonResponse(w, status, "", map[string]any{"detail": detail})
}

// internalResponse writes the generic 500 body, bypassing validation.
func (s *Server) internalResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write([]byte(`{"detail":"Internal server error"}`)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
