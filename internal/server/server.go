// Package server exposes the scrape and chat API consumed by the frontend.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/bizintel/internal/answer"
)

// Scraper fetches a normalized URL and returns its raw HTML.
type Scraper interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Server wires the HTTP surface to the scrape pipeline and answer engine.
type Server struct {
	scraper Scraper
	engine  answer.Engine
	origins []string
}

// New creates a Server. origins is the CORS allowlist for /api routes.
func New(scraper Scraper, engine answer.Engine, origins []string) *Server {
	return &Server{
		scraper: scraper,
		engine:  engine,
		origins: origins,
	}
}

// Router builds the chi router with CORS, panic recovery, and request
// logging. Handler failures become structured JSON errors, never a crashed
// request process.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", s.handleHealth)
		r.Post("/scrape", s.handleScrape)
		r.Post("/chat", s.handleChat)
	})

	return r
}

// requestLogger tags every request with an ID and logs method, path,
// status, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		zap.L().Info("http request",
			zap.String("request_id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	body := map[string]string{"error": msg}
	if details != "" {
		body["details"] = details
	}
	writeJSON(w, status, body)
}
