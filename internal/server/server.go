// Package server implements the HTTP preview service.
//
// It exposes a single painting endpoint that generates and renders on
// demand, with a content cache keyed by the generation parameters so
// repeated requests for the same seed and size are served from disk.
package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hselder/aquarelle/pkg/cache"
	"github.com/hselder/aquarelle/pkg/render"
	"github.com/hselder/aquarelle/pkg/scene"
)

// cacheTTL bounds how long a rendered painting stays on disk. Renders
// are deterministic, so this only limits disk growth.
const cacheTTL = 24 * time.Hour

// Server renders paintings over HTTP.
type Server struct {
	cache  cache.Cache
	logger *log.Logger
}

// New creates a server. A nil cache disables caching; a nil logger uses
// the default.
func New(c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NullCache{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cache: c, logger: logger}
}

// Handler returns the HTTP routes:
//
//	GET /painting?seed=42&width=1200&height=600&thickness=8&format=png
//	GET /healthz
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/painting", s.handlePainting)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Infof("Listening on %s", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

type paintingRequest struct {
	seed          int64
	width, height int
	thickness     float64
	format        string
}

func parseRequest(r *http.Request) (paintingRequest, error) {
	q := r.URL.Query()
	req := paintingRequest{
		seed:      42,
		width:     scene.BaseWidth,
		height:    scene.BaseHeight,
		thickness: render.DefaultLineThickness,
		format:    "png",
	}

	var err error
	if v := q.Get("seed"); v != "" {
		if req.seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, fmt.Errorf("invalid seed %q", v)
		}
	}
	if v := q.Get("width"); v != "" {
		if req.width, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("invalid width %q", v)
		}
	}
	if v := q.Get("height"); v != "" {
		if req.height, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("invalid height %q", v)
		}
	}
	if v := q.Get("thickness"); v != "" {
		if req.thickness, err = strconv.ParseFloat(v, 64); err != nil || req.thickness <= 0 {
			return req, fmt.Errorf("invalid thickness %q", v)
		}
	}
	if v := q.Get("format"); v != "" {
		req.format = v
	}
	if req.format != "png" && req.format != "svg" {
		return req, fmt.Errorf("invalid format %q (must be png or svg)", req.format)
	}
	if req.width <= 0 || req.height <= 0 {
		return req, fmt.Errorf("dimensions %dx%d must be positive", req.width, req.height)
	}
	if req.width > 12000 || req.height > 6000 {
		return req, fmt.Errorf("dimensions %dx%d exceed the 12000x6000 limit", req.width, req.height)
	}
	return req, nil
}

func (s *Server) handlePainting(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	logger := s.logger.With("request_id", reqID)

	req, err := parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cache.RenderKey(req.format, req.seed, req.width, req.height, req.thickness)
	if data, err := s.cache.Get(r.Context(), key); err == nil {
		logger.Debugf("Cache hit for seed %d", req.seed)
		writePainting(w, req.format, data)
		return
	}

	start := time.Now()
	data, err := renderPainting(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Infof("Rendered seed %d at %dx%d (%s)", req.seed, req.width, req.height,
		time.Since(start).Round(time.Millisecond))

	if err := s.cache.Set(r.Context(), key, data, cacheTTL); err != nil {
		logger.Warnf("Cache write failed: %v", err)
	}
	writePainting(w, req.format, data)
}

func renderPainting(req paintingRequest) ([]byte, error) {
	sc, err := scene.Build(req.seed, req.width, req.height)
	if err != nil {
		return nil, err
	}
	opts := render.Options{LineThickness: req.thickness}
	if req.format == "svg" {
		var buf bytes.Buffer
		if err := render.SVG(&buf, sc, opts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return render.PNG(sc, opts)
}

func writePainting(w http.ResponseWriter, format string, data []byte) {
	if format == "svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}
