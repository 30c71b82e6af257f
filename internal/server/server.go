// Package server exposes the comparison pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz       liveness
//	GET  /api/items     active working set
//	GET  /api/layout    geometry for a selection
//	GET  /render.svg    rendered comparison
//	GET  /render.png    rendered comparison
//	GET  /theme.css     theme palette as CSS custom properties
//	POST /api/reload    re-resolve sources and swap the working set
//	GET  /api/theme     stored theme preference
//	PUT  /api/theme     update the theme preference
//
// Selection parameters (left, right, mode, swap, width, height, viewport,
// theme) are read from the query string. Invalid parameters produce a 400
// response carrying the error code.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/source"
)

const shutdownTimeout = 10 * time.Second

// Config holds the dependencies of a Server.
type Config struct {
	Runner   *pipeline.Runner
	Resolver *source.Resolver
	Prefs    prefs.Store

	// Defaults seeds every request's options before query parameters apply.
	Defaults pipeline.Options

	Logger *log.Logger
}

// Server serves layouts and renders from a shared runner.
type Server struct {
	runner   *pipeline.Runner
	resolver *source.Resolver
	prefs    prefs.Store
	defaults pipeline.Options
	logger   *log.Logger

	reloadMu sync.Mutex
	router   http.Handler

	themeMu sync.RWMutex
	theme   string
}

// New creates a server. A nil preference store keeps the theme in memory.
// The stored theme is read once here; PUT /api/theme writes it back.
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		resolver: cfg.Resolver,
		prefs:    cfg.Prefs,
		defaults: cfg.Defaults,
		logger:   cfg.Logger,
	}
	if s.prefs == nil {
		s.prefs = prefs.NewMemoryStore()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	theme, err := prefs.Theme(context.Background(), s.prefs)
	if err != nil {
		s.logger.Warn("read theme preference", "err", err)
	}
	s.theme = theme
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Theme returns the active theme name.
func (s *Server) Theme() string {
	s.themeMu.RLock()
	defer s.themeMu.RUnlock()
	return s.theme
}

func (s *Server) setTheme(name string) {
	s.themeMu.Lock()
	s.theme = name
	s.themeMu.Unlock()
}

// Reload resolves the sources again and swaps the working set. Concurrent
// reloads are serialized; renders keep running against the dataset they
// started with.
func (s *Server) Reload(ctx context.Context) source.Resolution {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	return s.runner.Reload(ctx, s.resolver)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
