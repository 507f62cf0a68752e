package services

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message is one frame on the websocket boundary.
type Message struct {
	Type      string      `json:"type"` // "snapshot", "pong", "error"
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// ClientConnection is one attached display client.
type ClientConnection struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan Message
	Close chan bool
}

// Hub fans the composite snapshot out to attached display clients once
// per broadcast interval. It is a reader of the Monitor like any other
// publish-boundary caller; it never mutates collector state.
type Hub struct {
	monitor  *Monitor
	interval time.Duration

	mu         sync.RWMutex
	clients    map[string]*ClientConnection
	register   chan *ClientConnection
	unregister chan string
	done       chan struct{}
}

func NewHub(monitor *Monitor, interval time.Duration) *Hub {
	return &Hub{
		monitor:    monitor,
		interval:   interval,
		clients:    make(map[string]*ClientConnection),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		done:       make(chan struct{}),
	}
}

// Start launches the hub's event loop.
func (h *Hub) Start() {
	go h.run()
	log.Printf("Snapshot hub started (interval: %v)", h.interval)
}

// Stop ends the event loop.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case <-ticker.C:
			h.mu.RLock()
			idle := len(h.clients) == 0
			h.mu.RUnlock()
			if idle {
				continue
			}

			snap := h.monitor.Snapshot()
			h.broadcast(Message{
				Type:      "snapshot",
				Timestamp: snap.Timestamp,
				Data:      snap,
			})
		}
	}
}

func (h *Hub) broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- msg:
		default:
			// Client's send channel is full, skip this frame.
		}
	}
}

// Register attaches a client to the hub.
func (h *Hub) Register(client *ClientConnection) {
	h.register <- client
}

// Unregister detaches a client from the hub.
func (h *Hub) Unregister(clientID string) {
	h.unregister <- clientID
}
