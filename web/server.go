// Package web serves the citation form and a small JSON API on top of the
// pipeline. Every request works on its own local state.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/webcite/core"
	"github.com/gaurav-prasanna/webcite/core/cite"
	"github.com/gaurav-prasanna/webcite/core/render"
)

// Flash messages shown on the form.
const (
	MsgEmptyURL   = "Please enter a URL."
	MsgCiteFailed = "Error extracting metadata. Check that the URL is correct."
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Citer is the pipeline as seen by the handlers.
type Citer interface {
	Run(ctx context.Context, rawURL string) (cite.Result, error)
}

type flash struct {
	Category string
	Message  string
}

type pageData struct {
	URL      string
	Citation template.HTML
	Flashes  []flash
}

// Server holds the handlers and their dependencies.
type Server struct {
	citer  Citer
	logger *zap.Logger
}

// NewServer creates a Server. A nil logger disables logging.
func NewServer(citer Citer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{citer: citer, logger: logger}
}

// Handler returns the routed handler wrapped in request-id middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("GET /api/citation", s.handleAPICitation)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return NewRequestIDMiddleware(s.logger).Middleware(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, pageData{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	rawURL := r.PostFormValue("url")
	data := pageData{URL: rawURL}

	res, outcome := s.run(r.Context(), "form", rawURL)
	switch outcome {
	case outcomeOK:
		data.Citation = template.HTML(render.Fragment(res.Citation, res.Metadata.URL))
	case outcomeEmptyURL:
		data.Flashes = append(data.Flashes, flash{Category: "error", Message: MsgEmptyURL})
	default:
		data.Flashes = append(data.Flashes, flash{Category: "error", Message: MsgCiteFailed})
	}
	s.renderPage(w, r, data)
}

func (s *Server) handleAPICitation(w http.ResponseWriter, r *http.Request) {
	res, outcome := s.run(r.Context(), "api", r.URL.Query().Get("url"))
	switch outcome {
	case outcomeOK:
		writeJSON(w, http.StatusOK, render.NewCitationJSON(res.Citation, res.Metadata))
	case outcomeEmptyURL:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": cite.ErrEmptyURL.Error()})
	case outcomeUnavailable:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": core.ErrMetadataUnavailable.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// run executes the pipeline and classifies the result for responses and metrics.
func (s *Server) run(ctx context.Context, endpoint, rawURL string) (cite.Result, string) {
	start := time.Now()
	res, err := s.citer.Run(ctx, rawURL)
	outcome := classify(err)

	citationDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	citationsTotal.WithLabelValues(endpoint, outcome).Inc()

	if outcome == outcomeError {
		s.logger.Error("citation failed",
			zap.String("request_id", RequestIDFromContext(ctx)),
			zap.String("url", rawURL),
			zap.Error(err))
	}
	return res, outcome
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error("rendering page",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
