package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/laingsimon/courage-scores/internal/logger"
)

// Message is one live update: which aggregate changed, what kind it is,
// and the updated payload.
type Message struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	Data any       `json:"data,omitempty"`
}

type Client struct {
	ID       uuid.UUID
	Entities map[uuid.UUID]bool
	Outbound chan Message
	done     chan struct{}
}

// Hub fans updated aggregates out to connected clients. Clients subscribe
// to the ids of the aggregates they are watching.
type Hub struct {
	mu            sync.RWMutex
	log           *logger.Logger
	subscriptions map[uuid.UUID]map[*Client]bool
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:           log.With("component", "SSEHub"),
		subscriptions: make(map[uuid.UUID]map[*Client]bool),
	}
}

func (h *Hub) NewClient() *Client {
	return &Client{
		ID:       uuid.New(),
		Entities: make(map[uuid.UUID]bool),
		Outbound: make(chan Message, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) Subscribe(client *Client, entityID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if entityID == uuid.Nil {
		return
	}
	client.Entities[entityID] = true

	clients, ok := h.subscriptions[entityID]
	if !ok {
		clients = make(map[*Client]bool)
		h.subscriptions[entityID] = clients
	}
	clients[client] = true
	h.log.Debug("SSE client subscribed", "clientId", client.ID, "entityId", entityID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id := range client.Entities {
		if clients, ok := h.subscriptions[id]; ok {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.subscriptions, id)
			}
		}
	}
	client.Entities = make(map[uuid.UUID]bool)
	close(client.done)
}

// Broadcast delivers msg to every client subscribed to the changed
// aggregate. Slow clients are skipped rather than blocked on.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.subscriptions[msg.ID] {
		select {
		case client.Outbound <- msg:
		default:
			h.log.Warn("SSE client too slow, dropping message", "clientId", client.ID)
		}
	}
}

// Serve streams the client's outbound messages over an SSE response until
// the connection drops or the client is removed.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, client *Client) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-client.done:
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case msg := <-client.Outbound:
			raw, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn("Could not marshal SSE message", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Type, raw)
			flusher.Flush()
		}
	}
}
