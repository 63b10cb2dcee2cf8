// Package websocket pushes content change events to connected admin browsers.
// file: websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"rpe-portal/logger"
	"rpe-portal/metrics"
	"rpe-portal/services"
)

// ActionCollectionChanged is the action of every change message.
const ActionCollectionChanged = "collectionChanged"

// ChangeMessage is the JSON pushed to clients for each mutation.
type ChangeMessage struct {
	Action     string      `json:"action"`
	Collection string      `json:"collection"`
	Op         services.Op `json:"op"`
	Key        string      `json:"key,omitempty"`
}

// Hub fans broadcast messages out to every registered connection.
type Hub struct {
	mu          sync.Mutex
	connections map[*Connection]bool
	broadcast   chan []byte
	metrics     metrics.Publisher
}

// NewHub creates a hub reporting connection counts to pub.
func NewHub(pub metrics.Publisher) *Hub {
	if pub == nil {
		pub = metrics.Nop{}
	}
	return &Hub{
		connections: make(map[*Connection]bool),
		broadcast:   make(chan []byte, 256),
		metrics:     pub,
	}
}

// Watch subscribes the hub to every observable. The returned function unsubscribes.
func (h *Hub) Watch(observables ...services.Observable) func() {
	unsubs := make([]func(), 0, len(observables))
	for _, o := range observables {
		unsubs = append(unsubs, o.Subscribe(h.Notify))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Notify encodes e as a change message and queues it. It never blocks.
func (h *Hub) Notify(e services.Event) {
	msg, err := json.Marshal(ChangeMessage{
		Action:     ActionCollectionChanged,
		Collection: e.Collection,
		Op:         e.Op,
		Key:        e.Key,
	})
	if err != nil {
		logger.Error.Printf("[Hub.Notify] Error marshalling change message: %v", err)
		return
	}
	h.Broadcast(msg)
}

// Broadcast queues a raw message for every connection.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		logger.Warn.Println("[Hub.Broadcast] Broadcast queue full, dropping message")
	}
}

// Run distributes queued messages until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

func (h *Hub) fanOut(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		select {
		case c.send <- msg:
		default:
			logger.Warn.Printf("Dropping broadcast message for connection %v", c.conn.RemoteAddr())
		}
	}
}

// Count is the number of registered connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.connections)
}

func (h *Hub) register(c *Connection) {
	h.mu.Lock()
	h.connections[c] = true
	n := len(h.connections)
	h.mu.Unlock()
	metrics.PublishConnections(h.metrics, n)
}

// unregister removes c and closes its send channel exactly once.
func (h *Hub) unregister(c *Connection) {
	h.mu.Lock()
	if _, ok := h.connections[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.connections, c)
	close(c.send)
	n := len(h.connections)
	h.mu.Unlock()
	metrics.PublishConnections(h.metrics, n)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.connections {
		delete(h.connections, c)
		close(c.send)
	}
}
