// Package server pushes scene snapshots to websocket clients
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"boatscene/core"
)

// Message is what clients receive on every tick
type Message struct {
	Type string `json:"type"`
	core.Snapshot
}

// Command is a request sent by a client, applied on the render thread
type Command struct {
	ResetBoat bool `json:"resetBoat"`
}

// Hub keeps the latest snapshot and broadcasts it at a fixed interval.
// Publish never blocks the render loop; all socket writes happen on the hub goroutines.
type Hub struct {
	interval time.Duration
	upgrader websocket.Upgrader

	latestMu sync.Mutex
	latest   core.Snapshot
	have     bool

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	commands chan Command
	srv      *http.Server
}

// NewHub creates a hub that broadcasts every interval
func NewHub(interval time.Duration) *Hub {
	return &Hub{
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // local viewer, any origin
			},
		},
		clients:  make(map[*websocket.Conn]*sync.Mutex),
		commands: make(chan Command, 16),
	}
}

// Publish stores the latest snapshot
func (h *Hub) Publish(s core.Snapshot) {
	h.latestMu.Lock()
	h.latest = s
	h.have = true
	h.latestMu.Unlock()
}

// Commands delivers client requests; drain it from the render loop
func (h *Hub) Commands() <-chan Command {
	return h.commands
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// Handler serves /ws and a JSON status page on /
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWebSocket)
	mux.HandleFunc("/", h.serveStatus)
	return mux
}

// Start listens on addr and runs the broadcast loop until ctx is done or Shutdown is called
func (h *Hub) Start(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	h.srv = &http.Server{Handler: h.Handler()}
	go func() {
		if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("Telemetry server error:", err)
		}
	}()
	go h.Run(ctx)

	fmt.Printf("Telemetry server listening on ws://%s/ws\n", ln.Addr())
	return nil
}

// Shutdown stops the HTTP server and closes every client
func (h *Hub) Shutdown(ctx context.Context) error {
	h.clientsMu.Lock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.clientsMu.Unlock()

	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}

// Run broadcasts the latest snapshot every interval until ctx is done
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if msg, ok := h.message(); ok {
				h.broadcast(msg)
			}
		}
	}
}

func (h *Hub) message() (Message, bool) {
	h.latestMu.Lock()
	defer h.latestMu.Unlock()
	return Message{Type: "snapshot", Snapshot: h.latest}, h.have
}

func (h *Hub) serveStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	msg, ok := h.message()
	if !ok {
		http.Error(w, "no frame rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Println("Status write error:", err)
	}
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	h.clientsMu.Lock()
	h.clients[conn] = connMutex
	h.clientsMu.Unlock()
	defer h.remove(conn)

	// Send the current state straight away
	if msg, ok := h.message(); ok {
		connMutex.Lock()
		err := conn.WriteJSON(msg)
		connMutex.Unlock()
		if err != nil {
			return
		}
	}

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("WebSocket read error:", err)
			}
			return
		}
		select {
		case h.commands <- cmd:
		default:
			log.Println("Dropping client command, queue full")
		}
	}
}

func (h *Hub) broadcast(msg Message) {
	h.clientsMu.RLock()
	var failed []*websocket.Conn
	for client, mutex := range h.clients {
		mutex.Lock()
		err := client.WriteJSON(msg)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			failed = append(failed, client)
		}
	}
	h.clientsMu.RUnlock()

	for _, client := range failed {
		client.Close()
		h.remove(client)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.clientsMu.Lock()
	delete(h.clients, conn)
	h.clientsMu.Unlock()
}
