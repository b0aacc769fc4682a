// Package server exposes the documentation pages over HTTP.
//
// The playground widget itself has no network surface; this server only
// publishes the same markdown pages the docs command renders, plus health
// and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shuriken-cli/tour/internal/docs"
	"github.com/shuriken-cli/tour/internal/log"
)

// PageInfo is the JSON shape of an index entry.
type PageInfo struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// Server serves the documentation pages.
type Server struct {
	router    chi.Router
	registry  *prometheus.Registry
	pageViews *prometheus.CounterVec
}

// New creates a server with its own metrics registry, so tests can run
// several instances without collisions.
func New() *Server {
	registry := prometheus.NewRegistry()
	pageViews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shuriken_tour_page_requests_total",
		Help: "Documentation page requests by slug and status code.",
	}, []string{"slug", "status"})
	registry.MustRegister(pageViews)

	s := &Server{
		registry:  registry,
		pageViews: pageViews,
	}

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/docs/{slug}", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	pages := docs.Pages()
	index := make([]PageInfo, 0, len(pages))
	for _, p := range pages {
		index = append(index, PageInfo{
			Slug:    p.Slug,
			Title:   p.Title,
			Summary: p.Summary,
			URL:     "/docs/" + p.Slug,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(index); err != nil {
		http.Error(w, "encode index", http.StatusInternalServerError)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := docs.Lookup(slug)
	if errors.Is(err, docs.ErrNotFound) {
		s.pageViews.WithLabelValues(slug, strconv.Itoa(http.StatusNotFound)).Inc()
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	md, err := page.Markdown()
	if err != nil {
		s.pageViews.WithLabelValues(slug, strconv.Itoa(http.StatusInternalServerError)).Inc()
		http.Error(w, "read page", http.StatusInternalServerError)
		return
	}

	s.pageViews.WithLabelValues(slug, strconv.Itoa(http.StatusOK)).Inc()
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(md))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Printf("Serving documentation on http://localhost%s\n", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
