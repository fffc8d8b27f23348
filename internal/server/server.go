// Package server exposes the binary cookies codec over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cixtor/binarycookies/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodySize limits uploaded jars and encode requests.
const DefaultMaxBodySize = 16 << 20

// Config configures the HTTP server.
type Config struct {
	Bind        string
	Port        int
	MaxBodySize int64
}

// Server holds the API server state
type Server struct {
	config  Config
	metrics *Metrics
	logger  binarycookies.Logger
	clock   binarycookies.Clock
}

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeRequest is the body of POST /api/v1/encode.
type EncodeRequest struct {
	Pages []binarycookies.Page `json:"pages"`
}

// New creates a new API server. Cookies encoded without dates are dated
// with clock.
func New(config Config, logger binarycookies.Logger, clock binarycookies.Clock) *Server {
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = DefaultMaxBodySize
	}

	return &Server{
		config:  config,
		metrics: NewMetrics(),
		logger:  logger,
		clock:   clock,
	}
}

// Router returns the routes of the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Post("/decode", s.metrics.InstrumentHandler("POST", "/api/v1/decode", s.handleDecode))
		r.Post("/encode", s.metrics.InstrumentHandler("POST", "/api/v1/encode", s.handleEncode))
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Bind, strconv.Itoa(s.config.Port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)

	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode parses the jar sent as the request body. The response is
// JSON unless format=netscape is requested.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodySize))
	if err != nil {
		sendError(w, "failed to read body: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	jar, err := binarycookies.Parse(data, binarycookies.WithLogger(s.logger))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	count := 0
	for _, page := range jar.Pages {
		count += len(page.Cookies)
	}

	s.metrics.RecordCookies("decode", count)
	s.metrics.RecordIssues(len(jar.Issues))

	if r.URL.Query().Get("format") == "netscape" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := binarycookies.WriteNetscape(w, jar.Pages, nil); err != nil {
			s.logger.Error("failed to write response", "error", err)
		}
		return
	}

	sendSuccess(w, jar)
}

// handleEncode builds a jar from the JSON description of its pages.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.config.MaxBodySize)).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	count := 0
	for _, page := range req.Pages {
		for _, cookie := range page.Cookies {
			if hasNUL(cookie.Domain, cookie.Name, cookie.Path, cookie.Value) {
				sendError(w, "cookie strings cannot contain NUL", http.StatusBadRequest)
				return
			}
		}
		count += len(page.Cookies)
	}

	data := binarycookies.Build(req.Pages, binarycookies.WithClock(s.clock))
	s.metrics.RecordCookies("encode", count)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func hasNUL(values ...string) bool {
	for _, v := range values {
		if strings.IndexByte(v, 0) >= 0 {
			return true
		}
	}
	return false
}

// sendSuccess sends a successful JSON response
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data})
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: false, Error: message})
}
