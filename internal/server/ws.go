package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// ResultsHub broadcasts per-frame analysis results to WebSocket clients.
// The pipeline publishes each frame's result; the hub fans it out to
// whoever is listening.
type ResultsHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewResultsHub creates an empty hub.
func NewResultsHub() *ResultsHub {
	return &ResultsHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *ResultsHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends a frame result to all connected clients. It is cheap when
// nobody is listening.
func (h *ResultsHub) Publish(result interface{}) {
	h.mu.RLock()
	empty := len(h.clients) == 0
	h.mu.RUnlock()
	if empty {
		return
	}

	msg, err := json.Marshal(map[string]interface{}{
		"result":    result,
		"timestamp": time.Now().UnixMilli(),
	})
	if err != nil {
		log.Printf("results marshal error: %v", err)
		return
	}

	h.mu.RLock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.RUnlock()
}

// Clients reports how many WebSocket clients are connected.
func (h *ResultsHub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
