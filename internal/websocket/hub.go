// Package websocket pushes change notifications to connected renderers so
// an open page can re-render after any mutation without polling.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event tells a renderer that part of the store changed. Entity is one of
// "list", "item", or "prefs"; List names the list the change happened in.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	List   string `json:"list,omitempty"`
	ID     int64  `json:"id,omitempty"`
}

// Hub tracks connected clients and fans events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Publish sends the event to every connected client. Slow clients whose
// buffers are full miss the event rather than stalling the publisher.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("encode event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Connected returns the number of attached clients.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
