package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"baccarat-lab/internal/observability"
)

// Hub fans live events out to connected websocket clients. Clients are
// write-only consumers; inbound messages are drained and ignored.
type Hub struct {
	upgrader websocket.Upgrader
	metrics  *observability.Metrics
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub(metrics *observability.Metrics, logger *log.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		metrics: metrics,
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Broadcast sends the JSON encoding of v to every connected client.
// Clients whose writes fail are dropped.
func (h *Hub) Broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("marshal broadcast: %v", err)
		}
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients, conn)
			h.clientCount(len(h.clients))
		}
	}
}

// Handler upgrades the request and keeps the connection registered until
// the client disconnects.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.clientCount(len(h.clients))
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.clientCount(len(h.clients))
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// clientCount reports the gauge; callers hold h.mu.
func (h *Hub) clientCount(n int) {
	if h.metrics != nil {
		h.metrics.LiveClients.Set(float64(n))
	}
}
