// Package api exposes a word store over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/prefix-trie/internal/store"
	"github.com/kumarlokesh/prefix-trie/internal/trie"
)

// Server represents the HTTP API server
type Server struct {
	store        *store.Store
	server       *http.Server
	metrics      *metrics
	logger       zerolog.Logger
	defaultLimit int
	maxLimit     int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLimits sets the autocomplete limit used when the request has none, and
// the largest limit a request may ask for.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Server) {
		s.defaultLimit = defaultLimit
		s.maxLimit = maxLimit
	}
}

// WithTimeouts sets the read and write timeouts of the underlying http.Server.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = read
		s.server.WriteTimeout = write
	}
}

// NewServer creates a new API server
func NewServer(addr string, st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:        st,
		metrics:      newMetrics(),
		logger:       zerolog.Nop(),
		defaultLimit: 10,
		maxLimit:     100,
		server:       &http.Server{Addr: addr},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.Use(s.metrics.middleware)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)

	r.HandleFunc("/words/{word}", s.insertWord).Methods(http.MethodPut)
	r.HandleFunc("/words/{word}", s.searchWord).Methods(http.MethodGet)
	r.HandleFunc("/words/{word}", s.removeWord).Methods(http.MethodDelete)
	r.HandleFunc("/prefixes/{prefix}", s.startsWith).Methods(http.MethodGet)
	r.HandleFunc("/complete", s.complete).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	s.server.Handler = r
	s.metrics.words.Set(float64(st.CountWords()))

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens on the configured address and serves until Shutdown is called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// insertWord handles PUT /words/{word}
func (s *Server) insertWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if err := s.store.Insert(word); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, trie.ErrInvalidCharacter) {
			status = http.StatusBadRequest
		}
		s.respondError(w, status, err)
		return
	}
	s.metrics.words.Set(float64(s.store.CountWords()))

	s.respond(w, http.StatusCreated, map[string]interface{}{
		"word":     word,
		"inserted": true,
	})
}

// searchWord handles GET /words/{word}
func (s *Server) searchWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	s.respond(w, http.StatusOK, map[string]interface{}{
		"word":  word,
		"found": s.store.Search(word),
	})
}

// removeWord handles DELETE /words/{word}
func (s *Server) removeWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	removed := s.store.RemoveWord(word)

	status := http.StatusNotFound
	if removed {
		status = http.StatusOK
		s.metrics.words.Set(float64(s.store.CountWords()))
	}
	s.respond(w, status, map[string]interface{}{
		"word":    word,
		"removed": removed,
	})
}

// startsWith handles GET /prefixes/{prefix}
func (s *Server) startsWith(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix": prefix,
		"exists": s.store.StartsWith(prefix),
	})
}

// complete handles GET /complete?prefix=..&limit=..
func (s *Server) complete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prefix := q.Get("prefix")

	limit := s.defaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix": prefix,
		"words":  s.store.Autocomplete(prefix, limit),
	})
}

// stats handles GET /stats
func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.store.Stats())
}
