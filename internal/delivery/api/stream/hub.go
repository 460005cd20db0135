// Package stream pushes catalog changes and operator notices to connected
// dashboards over WebSocket.
package stream

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// Message types sent to dashboards.
const (
	TypeSnapshot = "snapshot"
	TypeNotice   = "notice"
)

// Message is the single frame shape on the wire.
type Message struct {
	Type     string            `json:"type"`
	Revision uint64            `json:"revision,omitempty"`
	Total    int               `json:"total"`
	Kind     entity.NoticeKind `json:"kind,omitempty"`
	Message  string            `json:"message,omitempty"`
}

// Hub fans catalog events out to every connected dashboard. A client whose
// buffer is full is dropped rather than slowing the others down.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	last    *Message
	closed  bool
}

var _ service.ViewNotifier = (*Hub)(nil)

// NewHub creates a hub. An empty allowedOrigins accepts any origin.
func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}

				return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

// CollectionChanged tells dashboards to re-project. The catalog notifies
// outside its lock, so a revision older than the last one seen is dropped.
func (h *Hub) CollectionChanged(revision uint64, total int) {
	msg := &Message{Type: TypeSnapshot, Revision: revision, Total: total}

	h.mu.Lock()
	if h.last != nil && revision <= h.last.Revision {
		h.mu.Unlock()

		return
	}
	h.last = msg
	h.mu.Unlock()

	h.broadcast(msg)
}

// Notify shows a transient notice on every dashboard.
func (h *Hub) Notify(notice entity.Notice) {
	h.broadcast(&Message{Type: TypeNotice, Kind: notice.Kind, Message: notice.Message})
}

// Clients reports the number of connected dashboards.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Serve upgrades the request and blocks until the connection ends. The client
// first receives the latest snapshot frame, if any.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, op *entity.Operator) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "upgrade websocket")
	}

	c := &client{
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		operator: op.Email,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()

		return nil
	}
	h.clients[c] = struct{}{}
	last := h.last
	h.mu.Unlock()

	h.logger.Info("Dashboard connected", slog.String("operator", c.operator))

	if last != nil {
		h.enqueue(c, last)
	}

	go c.writePump(h.logger)
	c.readPump()

	h.unregister(c)
	h.logger.Info("Dashboard disconnected", slog.String("operator", c.operator))

	return nil
}

// Close disconnects every dashboard. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) broadcast(msg *Message) {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.enqueue(c, msg)
	}
}

func (h *Hub) enqueue(c *client, msg *Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to encode dashboard message", slog.Any("error", err))

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- payload:
	default:
		h.logger.Warn("Dropping slow dashboard", slog.String("operator", c.operator))
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

type client struct {
	conn     *websocket.Conn
	send     chan []byte
	operator string
}

// readPump discards inbound frames and keeps the pong deadline fresh.
func (c *client) readPump() {
	defer c.conn.Close()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump(logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Debug("Dashboard write failed", slog.Any("error", err))

				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
