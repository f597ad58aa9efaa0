package service

import (
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Hub holds the observers of the active game. Writes to a single connection
// are never concurrent.
type Hub struct {
	connections map[string]Conn // connection key -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]Conn),
	}
}

// Register adds conn under key. It reports false when key already has a
// connection; the existing one is kept.
func (h *Hub) Register(key string, conn Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.connections[key]; exists {
		return false
	}
	h.connections[key] = conn
	return true
}

func (h *Hub) Unregister(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connections, key)
}

func (h *Hub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Send writes msg to one connection.
func (h *Hub) Send(conn Conn, msg ws.Message) error {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

// Broadcast writes msg to every connection, dropping the ones that fail.
func (h *Hub) Broadcast(msg ws.Message) {
	h.mu.RLock()
	active := make(map[string]Conn, len(h.connections))
	for key, conn := range h.connections {
		active[key] = conn
	}
	h.mu.RUnlock()

	for key, conn := range active {
		if err := h.Send(conn, msg); err != nil {
			log.Warnf("dropping connection %s: %v", key, err)
			h.Unregister(key)
		}
	}
}
