// Package server serves the component gallery: an index of the catalog, one
// page per component with every fixture example rendered, a render-by-name
// endpoint and live reload when fixture files change.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/conneroisu/tailblocks/internal/config"
	"github.com/conneroisu/tailblocks/internal/fixtures"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/internal/renderer"
	"github.com/conneroisu/tailblocks/internal/version"
	"github.com/conneroisu/tailblocks/internal/watcher"
)

const (
	debounceDelay   = 300 * time.Millisecond
	shutdownTimeout = 5 * time.Second
)

// PreviewServer serves components with live reload capability
type PreviewServer struct {
	config   *config.Config
	logger   logging.Logger
	registry *registry.ComponentRegistry
	renderer *renderer.ComponentRenderer
	loader   *fixtures.Loader
	watcher  *watcher.FileWatcher
	hub      *hub

	httpServer   *http.Server
	serverMutex  sync.RWMutex
	shutdownOnce sync.Once
	stopOnce     sync.Once
	started      time.Time
}

// UpdateMessage represents a message sent to the browser
type UpdateMessage struct {
	Type      string    `json:"type"`
	Target    string    `json:"target,omitempty"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Message types sent over the live reload socket.
const (
	MessageReload = "reload"
	MessageError  = "error"
)

// New creates a preview server over an already populated registry. The
// loader is used to reload fixture files as they change.
func New(cfg *config.Config, reg *registry.ComponentRegistry, loader *fixtures.Loader, logger logging.Logger) (*PreviewServer, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.WithComponent("server")

	fileWatcher, err := watcher.NewFileWatcher(debounceDelay, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &PreviewServer{
		config:   cfg,
		logger:   logger,
		registry: reg,
		renderer: renderer.NewComponentRenderer(reg, logger),
		loader:   loader,
		watcher:  fileWatcher,
		hub:      newHub(),
		started:  time.Now(),
	}, nil
}

// Handler returns the gallery routes.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /components", s.handleComponents)
	mux.HandleFunc("GET /component/{name}", s.handleComponent)
	mux.HandleFunc("GET /render/{name}", s.handleRender)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.logRequests(mux)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *PreviewServer) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *PreviewServer) Serve(ctx context.Context, ln net.Listener) error {
	if err := s.setupFileWatcher(ctx); err != nil {
		ln.Close()
		return err
	}

	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "serving gallery", "addr", ln.Addr().String(), "components", s.registry.Count())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.stopBackground()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		<-errCh
		return err
	}
}

func (s *PreviewServer) setupFileWatcher(ctx context.Context) error {
	s.watcher.AddFilter(watcher.YAMLFilter)
	s.watcher.AddFilter(watcher.NoHiddenFilter)
	s.watcher.AddFilter(watcher.ExcludeFilter(s.config.Components.ExcludePatterns...))
	s.watcher.AddHandler(s.handleFileChange)

	for _, dir := range s.config.Components.FixturePaths {
		if _, err := os.Stat(dir); err != nil {
			s.logger.Warn(ctx, err, "not watching fixture path", "path", dir)
			continue
		}
		if err := s.watcher.AddRecursive(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return s.watcher.Start(ctx)
}

// handleFileChange reloads changed fixtures and tells browsers to refresh.
// A fixture that fails to load is reported to the browser and the examples
// it previously contributed stay registered.
func (s *PreviewServer) handleFileChange(events []watcher.ChangeEvent) error {
	ctx := context.Background()
	for _, event := range events {
		s.logger.Debug(ctx, "fixture changed", "path", event.Path, "event", event.Type.String())

		if event.Gone() {
			s.loader.Forget(event.Path)
			continue
		}

		f, err := s.loader.LoadFile(event.Path)
		if err != nil {
			s.logger.Warn(ctx, err, "fixture reload failed", "path", event.Path)
			s.broadcastMessage(UpdateMessage{Type: MessageError, Target: event.Path, Content: err.Error()})
			continue
		}
		s.broadcastMessage(UpdateMessage{Type: MessageReload, Target: f.Component})
	}
	return nil
}

func (s *PreviewServer) broadcastMessage(msg UpdateMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error(context.Background(), err, "failed to marshal message")
		data = []byte(`{"type":"reload"}`)
	}
	s.hub.broadcast(data)
}

// Shutdown gracefully shuts down the server and cleans up resources
func (s *PreviewServer) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "shutting down")

		s.hub.close()
		s.stopBackground()

		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()

		if server != nil {
			shutdownErr = server.Shutdown(ctx)
		}
	})

	return shutdownErr
}

func (s *PreviewServer) stopBackground() {
	s.stopOnce.Do(func() {
		if err := s.watcher.Stop(); err != nil {
			s.logger.Warn(context.Background(), err, "stopping watcher")
		}
	})
}

func (s *PreviewServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// handleHealth returns the server health status for health checks
func (s *PreviewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	examples := 0
	for _, c := range s.registry.List() {
		examples += len(c.Examples)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"version":    version.GetShortVersion(),
		"uptime":     time.Since(s.started).Round(time.Second).String(),
		"components": s.registry.Count(),
		"examples":   examples,
		"clients":    s.hub.count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
