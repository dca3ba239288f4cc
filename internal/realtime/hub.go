// internal/realtime/hub.go
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Hub is the connection registry: user identity -> at most one live
// client, last-registered-wins. Safe for concurrent use from every
// connection goroutine and the notification fanout.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*Client),
	}
}

// Register installs the client as the user's current handle, closing any
// prior one.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	prev := h.clients[c.UserID]
	h.clients[c.UserID] = c
	h.mu.Unlock()

	if prev != nil && prev != c {
		prev.Close()
	}
}

// Unregister removes the mapping only if the user's current handle is the
// given client, so a stale disconnect never evicts a newer registration.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if h.clients[c.UserID] == c {
		delete(h.clients, c.UserID)
	}
	h.mu.Unlock()
	c.Close()
}

func (h *Hub) Lookup(userID uuid.UUID) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients[userID]
}

// Push marshals the payload and queues it on the user's live connection,
// if any. Satisfies services.LivePusher.
func (h *Hub) Push(userID uuid.UUID, payload any) error {
	c := h.Lookup(userID)
	if c == nil {
		return ErrNotConnected
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.Send(data)
}
