package server

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/knadh/koanf/providers/file"

	"github.com/folio-dev/folio/internal/site"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local dev server; the page itself is served from the same origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans one reload notification out to every connected browser tab.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	closed  bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// HandleWS upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = true
	h.mu.Unlock()

	// Drain the connection; the client never sends meaningful data, we
	// only need to notice the close.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a text message to every connected client. Clients that
// fail to receive are dropped.
func (h *Hub) Broadcast(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and rejects future registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.clients, conn)
}

// WatchData watches the portfolio data file and rebuilds the site on every
// change. The rebuild's loaded event reaches the hub through the builder's
// bus, so browsers reload automatically. Only file sources can be watched;
// for http sources this is a no-op.
func WatchData(ctx context.Context, dataPath string, builder *site.Builder) error {
	f := file.Provider(dataPath)
	return f.Watch(func(event interface{}, err error) {
		if err != nil {
			log.Printf("server: watching %s: %v", dataPath, err)
			return
		}
		log.Printf("server: %s changed, rebuilding", dataPath)
		if _, err := builder.Rebuild(ctx); err != nil {
			log.Printf("server: rebuild: %v", err)
		}
	})
}
