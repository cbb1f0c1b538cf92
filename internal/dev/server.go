package dev

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/davestewart/wxt-module-pages/internal/build"
	"github.com/davestewart/wxt-module-pages/internal/config"
	"github.com/davestewart/wxt-module-pages/internal/scan"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
)

// Server is the development server. It owns the watcher, the reload hub,
// and the most recent build result, which is swapped atomically so
// request handlers never observe a half-built pass.
type Server struct {
	cfg    *config.Config
	drv    driver.Driver
	log    *zap.Logger
	reload *ReloadServer

	current   atomic.Pointer[build.Result]
	rebuildMu sync.Mutex
}

// NewServer creates a development server.
func NewServer(cfg *config.Config, drv driver.Driver, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:    cfg,
		drv:    drv,
		log:    log,
		reload: NewReloadServer(),
	}
}

// Roots resolves the pages roots: explicit config roots when present,
// convention-based discovery otherwise.
func (s *Server) Roots() ([]scan.Root, error) {
	if len(s.cfg.Roots) > 0 {
		roots := make([]scan.Root, 0, len(s.cfg.Roots))
		for _, rc := range s.cfg.Roots {
			dir := rc.Dir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(s.cfg.Dir(), dir)
			}
			roots = append(roots, scan.Root{Dir: dir, Scope: rc.Scope})
		}
		return roots, nil
	}
	return scan.DiscoverRoots(s.cfg.SrcPath())
}

// Rebuild runs one build pass and publishes the result. Concurrent
// triggers are serialized; readers keep seeing the previous result until
// the swap.
func (s *Server) Rebuild(ctx context.Context) error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	roots, err := s.Roots()
	if err != nil {
		return err
	}

	result, err := build.Run(ctx, build.Options{
		Roots:      roots,
		Driver:     s.drv,
		LayoutFile: s.cfg.LayoutFile,
		ParentFile: s.cfg.ParentFile,
	})
	if err != nil {
		return err
	}

	s.current.Store(result)

	s.log.Info("rebuilt routes",
		zap.Int("files", result.Files),
		zap.Int("scopes", len(result.Routes)),
		zap.Duration("duration", result.Duration))

	for _, conflict := range result.Conflicts {
		s.log.Warn("duplicate special file",
			zap.String("dir", conflict.Dir),
			zap.String("kind", string(conflict.Kind)),
			zap.String("kept", conflict.Kept),
			zap.String("discarded", conflict.Discarded))
	}

	s.reload.NotifyReload(result.Scopes())
	return nil
}

// Result returns the most recent build result, nil before the first pass.
func (s *Server) Result() *build.Result {
	return s.current.Load()
}

// Handler builds the HTTP API:
//
//	GET /routes.json        all scopes as JSON
//	GET /routes/{scope}.js  one scope as a generated ES module
//	GET /metrics            Prometheus metrics
//	GET /_pages/reload      WebSocket reload notifications
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/routes.json", s.handleRoutesJSON)
	r.Get("/routes/{scope}.js", s.handleScopeModule)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/_pages/reload", s.reload.HandleWebSocket)

	return r
}

func (s *Server) handleRoutesJSON(w http.ResponseWriter, req *http.Request) {
	result := s.current.Load()
	if result == nil {
		http.Error(w, "no build yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result.Routes); err != nil {
		s.log.Warn("encode routes", zap.Error(err))
	}
}

func (s *Server) handleScopeModule(w http.ResponseWriter, req *http.Request) {
	result := s.current.Load()
	if result == nil {
		http.Error(w, "no build yet", http.StatusServiceUnavailable)
		return
	}

	scope := chi.URLParam(req, "scope")
	if _, ok := result.Routes[scope]; !ok {
		http.Error(w, "unknown scope "+scope, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(driver.RenderScope(s.drv, result.Routes[scope])))
}

// Run performs the initial build, starts the watcher, and serves HTTP
// until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Rebuild(ctx); err != nil {
		return err
	}

	roots, err := s.Roots()
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(roots))
	for _, root := range roots {
		paths = append(paths, root.Dir)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    paths,
		Debounce: time.Duration(s.cfg.Dev.Debounce) * time.Millisecond,
	}, s.log)
	watcher.OnChange(func(changed []string) {
		s.log.Debug("changes detected", zap.Int("count", len(changed)))
		if err := s.Rebuild(ctx); err != nil {
			s.log.Error("rebuild failed", zap.Error(err))
		}
	})

	go func() {
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			s.log.Error("watcher stopped", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              s.cfg.DevAddress(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dev server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
