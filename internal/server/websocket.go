package server

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 30 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Messages queued per client before it is dropped as too slow.
	sendBuffer = 16
)

// client is one live reload connection.
type client struct {
	send      chan []byte
	closeSlow func()
}

// hub fans reload messages out to connected browsers.
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	done    chan struct{}
	once    sync.Once
}

func newHub() *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		done:    make(chan struct{}),
	}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast queues msg for every client. A client whose queue is full is
// closed instead of blocking the others.
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			go c.closeSlow()
		}
	}
}

// close tells every connection to go away.
func (h *hub) close() {
	h.once.Do(func() { close(h.done) })
}

func (s *PreviewServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.checkOrigin(r) {
		s.logger.Warn(r.Context(), nil, "websocket origin rejected", "origin", r.Header.Get("Origin"))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns(),
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMessageSize)

	c := &client{
		send: make(chan []byte, sendBuffer),
		closeSlow: func() {
			conn.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with messages")
		},
	}
	s.hub.add(c)
	defer s.hub.remove(c)

	// Browsers never send anything; CloseRead handles control frames and
	// cancels ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	if err := s.writePump(ctx, conn, c); err != nil {
		status := websocket.CloseStatus(err)
		if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
			s.logger.Debug(ctx, "websocket closed", "error", err.Error())
		}
	}
}

// writePump delivers queued messages and keeps the connection alive until
// the peer leaves or the hub closes.
func (s *PreviewServer) writePump(ctx context.Context, conn *websocket.Conn, c *client) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.hub.done:
			return conn.Close(websocket.StatusGoingAway, "server shutting down")
		case msg := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return err
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return err
			}
		}
	}
}

// checkOrigin accepts same-host origins and the configured allowed origins.
// Requests without an Origin header are rejected.
func (s *PreviewServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return false
	}
	if originURL.Host == r.Host {
		return true
	}

	for _, allowed := range s.config.Server.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// originPatterns converts allowed origins into the host patterns the
// websocket handshake checks.
func (s *PreviewServer) originPatterns() []string {
	patterns := make([]string, 0, len(s.config.Server.AllowedOrigins))
	for _, allowed := range s.config.Server.AllowedOrigins {
		if allowed == "*" {
			return []string{"*"}
		}
		if u, err := url.Parse(allowed); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}
