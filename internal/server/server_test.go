package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/conneroisu/tailblocks/internal/catalog"
	"github.com/conneroisu/tailblocks/internal/config"
	"github.com/conneroisu/tailblocks/internal/fixtures"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/internal/watcher"
)

func newTestServer(t *testing.T, cfg *config.Config) *PreviewServer {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}

	reg := catalog.New()
	loader := fixtures.NewLoader(reg, nil, cfg.Components.ExcludePatterns)
	n, collector := loader.LoadFS(context.Background(), catalog.Fixtures(), ".", "builtin")
	require.NoError(t, collector.Err())
	require.Positive(t, n)

	server, err := New(cfg, reg, loader, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })
	return server
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNew(t *testing.T) {
	server := newTestServer(t, nil)

	assert.NotNil(t, server.registry)
	assert.NotNil(t, server.renderer)
	assert.NotNil(t, server.watcher)
	assert.NotNil(t, server.hub)
	assert.Equal(t, 0, server.hub.count())
}

func TestHandleIndex(t *testing.T) {
	server := newTestServer(t, nil)

	rec := get(t, server.Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `href="/component/button"`)
	assert.Contains(t, body, `data-controller="ui--sidebar"`)
	assert.Contains(t, body, "Navigation")
	assert.Contains(t, body, "new WebSocket")
}

func TestHandleComponents(t *testing.T) {
	server := newTestServer(t, nil)

	rec := get(t, server.Handler(), "/components")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var all []registry.ComponentInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, server.registry.Count())

	rec = get(t, server.Handler(), "/components?category="+catalog.CategoryOverlays)
	var overlays []registry.ComponentInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overlays))
	require.NotEmpty(t, overlays)
	for _, c := range overlays {
		assert.Equal(t, catalog.CategoryOverlays, c.Category)
	}
}

func TestHandleComponent(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
	}{
		{
			name:     "known component",
			target:   "/component/badge",
			status:   http.StatusOK,
			contains: []string{"Badge", `id="example-outline"`, "Open fragment", `aria-current="page"`},
		},
		{
			name:   "unknown component",
			target: "/component/nope",
			status: http.StatusNotFound,
		},
		{
			name:     "invalid name",
			target:   "/component/Bad_Name",
			status:   http.StatusBadRequest,
			contains: []string{"ERR_INVALID_PATH", `invalid component name "Bad_Name"`},
		},
		{
			name:     "dotted name",
			target:   "/component/a.b",
			status:   http.StatusBadRequest,
			contains: []string{"ERR_INVALID_PATH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, server.Handler(), tt.target)
			assert.Equal(t, tt.status, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestHandleRender(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		name     string
		target   string
		status   int
		contains string
	}{
		{"example", "/render/badge?example=outline", http.StatusOK, ">Outline</span>"},
		{"json props", "/render/badge?" + url.Values{"props": {`{"variant":"destructive"}`}, "text": {"Hot"}}.Encode(), http.StatusOK, "bg-destructive"},
		{"yaml props", "/render/button?props=variant:%20outline&text=Go", http.StatusOK, ">Go</button>"},
		{"no props", "/render/separator", http.StatusOK, `role="none"`},
		{"unknown example", "/render/badge?example=missing", http.StatusNotFound, "ERR_EXAMPLE_NOT_FOUND"},
		{"unknown component", "/render/nope", http.StatusNotFound, "ERR_COMPONENT_NOT_FOUND"},
		{"malformed props", "/render/badge?props=%7B%7B", http.StatusBadRequest, "ERR_INVALID_PROPS"},
		{"unknown prop", "/render/badge?props=colour:%20red", http.StatusBadRequest, "ERR_INVALID_PROPS"},
		{"invalid name", "/render/Bad_Name", http.StatusBadRequest, "ERR_INVALID_PATH"},
		{"invalid name with example", "/render/Bad_Name?example=outline", http.StatusBadRequest, "ERR_INVALID_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, server.Handler(), tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t, nil)

	rec := get(t, server.Handler(), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(server.registry.Count()), health["components"])
	assert.Greater(t, health["examples"], float64(0))
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/components", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badge.yml")
	require.NoError(t, os.WriteFile(path, []byte("component: badge\nexamples:\n  - name: local\n    text: Local\n"), 0o644))

	server := newTestServer(t, nil)
	c := &client{send: make(chan []byte, 4), closeSlow: func() {}}
	server.hub.add(c)

	require.NoError(t, server.handleFileChange(nil))
	require.NoError(t, server.handleFileChange([]watcher.ChangeEvent{{Type: watcher.EventTypeModified, Path: path}}))

	badge, err := server.registry.Lookup("badge")
	require.NoError(t, err)
	_, ok := badge.Example("local")
	assert.True(t, ok)

	var msg UpdateMessage
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	assert.Equal(t, MessageReload, msg.Type)
	assert.Equal(t, "badge", msg.Target)

	require.NoError(t, os.WriteFile(path, []byte("component: nope\nexamples:\n  - name: x\n"), 0o644))
	require.NoError(t, server.handleFileChange([]watcher.ChangeEvent{{Type: watcher.EventTypeModified, Path: path}}))
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	assert.Equal(t, MessageError, msg.Type)

	badge, _ = server.registry.Lookup("badge")
	_, ok = badge.Example("local")
	assert.True(t, ok, "a broken edit keeps the last good examples")

	require.NoError(t, os.Remove(path))
	require.NoError(t, server.handleFileChange([]watcher.ChangeEvent{{Type: watcher.EventTypeDeleted, Path: path}}))
	badge, _ = server.registry.Lookup("badge")
	_, ok = badge.Example("local")
	assert.False(t, ok)
	_, ok = badge.Example("outline")
	assert.True(t, ok, "built-in examples survive")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	cfg := config.Default()
	cfg.Components.FixturePaths = []string{t.TempDir()}
	server := newTestServer(t, cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	resp, err := waitForHealth(t, "http://"+ln.Addr().String()+"/health")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.NoError(t, server.Shutdown(context.Background()))
	http.DefaultClient.CloseIdleConnections()
}

func waitForHealth(t *testing.T, target string) (*http.Response, error) {
	t.Helper()
	var lastErr error
	for i := 0; i < 50; i++ {
		resp, err := http.Get(target)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		time.Sleep(20 * time.Millisecond)
	}
	return nil, lastErr
}
