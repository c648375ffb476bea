// Package web hosts the browser-facing landing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/radchenko/landing/internal/platform/timeouts"
	module "github.com/radchenko/landing/internal/services/web/module"
	"github.com/radchenko/landing/internal/services/web/modules/landing"
	"github.com/radchenko/landing/internal/services/web/platform/observability"
	"github.com/radchenko/landing/internal/services/web/platform/weberror"
	"github.com/radchenko/landing/internal/services/web/routepath"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const compressionLevel = 5

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr       string
	StaticDir      string
	Logger         *zap.Logger
	TracerProvider trace.TracerProvider
	Modules        []module.Module
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// DefaultModules returns the modules mounted when Config.Modules is empty.
func DefaultModules() []module.Module {
	return []module.Module{landing.New(nil)}
}

// NewHandler builds the root handler: shared middleware, static images and
// the configured modules.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	modules := cfg.Modules
	if len(modules) == 0 {
		modules = DefaultModules()
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		observability.Trace(cfg.TracerProvider),
		observability.RequestLogger(logger),
		observability.Recover(logger),
		middleware.Compress(compressionLevel),
	)

	if staticDir := strings.TrimSpace(cfg.StaticDir); staticDir != "" {
		router.Get(routepath.ImagesRoute, staticFiles(staticDir))
	}

	mounted := make(map[string]string, len(modules))
	for _, m := range modules {
		if m == nil {
			continue
		}
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		if mount.Handler == nil {
			return nil, fmt.Errorf("mount module %s: handler is required", m.ID())
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" {
			prefix = routepath.Root
		}
		if owner, ok := mounted[prefix]; ok {
			return nil, fmt.Errorf("mount module %s: prefix %q already mounted by %s", m.ID(), prefix, owner)
		}
		mounted[prefix] = m.ID()
		router.Mount(prefix, mount.Handler)
	}
	if _, ok := mounted[routepath.Root]; !ok {
		router.NotFound(func(w http.ResponseWriter, r *http.Request) {
			weberror.WriteStatusPage(w, r, http.StatusNotFound)
		})
	}
	return router, nil
}

// staticFiles serves files below dir. Directory listings are answered with
// the not-found page.
func staticFiles(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			weberror.WriteStatusPage(w, r, http.StatusNotFound)
			return
		}
		files.ServeHTTP(w, r)
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if staticDir := strings.TrimSpace(cfg.StaticDir); staticDir != "" {
		info, err := os.Stat(staticDir)
		if err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", staticDir)
		}
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ReadTimeout:       timeouts.Read,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          zap.NewStdLog(logger.Named("http")),
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server stop.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	s.logger.Info("web server listening", zap.String("addr", listener.Addr().String()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		s.logger.Info("web server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
