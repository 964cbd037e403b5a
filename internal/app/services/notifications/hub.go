package notifications

import (
	"context"
	"sync"
	"time"

	"aura-service/internal/app/contracts"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Notification is the wire format pushed to websocket clients.
type Notification struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// client is one live websocket connection with its outbound buffer. The write
// pump drains Send; a full buffer drops the message rather than blocking the
// hub.
type client struct {
	ConnectionID string
	UserID       string
	Send         chan []byte
}

// Hub owns the live connections and delivers notifications through the
// registry's user and group mappings.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*client // connectionID -> client
	registry contracts.NotificationRegistry
	log      *zap.Logger
}

func NewHub(registry contracts.NotificationRegistry, log *zap.Logger) *Hub {
	return &Hub{
		clients:  make(map[string]*client),
		registry: registry,
		log:      log,
	}
}

var _ contracts.NotificationPusher = (*Hub)(nil)

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c.ConnectionID] = c
	h.mu.Unlock()
	h.registry.OnConnect(c.UserID, c.ConnectionID)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.ConnectionID]; ok {
		delete(h.clients, c.ConnectionID)
		close(c.Send)
	}
	h.mu.Unlock()
	h.registry.OnDisconnect(c.UserID, c.ConnectionID)
}

// SendToUser pushes to the user's current connection. An offline user is not
// an error; the notification is logged and dropped.
func (h *Hub) SendToUser(ctx context.Context, userID, eventName string, payload interface{}) error {
	connectionID, online := h.registry.Lookup(userID)
	if !online {
		h.log.Info("user offline, dropping notification",
			zap.String("user_id", userID),
			zap.String("event", eventName),
		)
		return nil
	}

	data, err := h.marshal(eventName, payload)
	if err != nil {
		return err
	}
	h.deliver(connectionID, data)
	return nil
}

// SendToGroup pushes to every connection in the group.
func (h *Hub) SendToGroup(ctx context.Context, groupName, eventName string, payload interface{}) error {
	data, err := h.marshal(eventName, payload)
	if err != nil {
		return err
	}
	for _, connectionID := range h.registry.GroupMembers(groupName) {
		h.deliver(connectionID, data)
	}
	return nil
}

func (h *Hub) marshal(eventName string, payload interface{}) ([]byte, error) {
	return json.Marshal(Notification{
		Event:     eventName,
		Timestamp: time.Now().UTC(),
		Data:      payload,
	})
}

// deliver holds the read lock across the send so unregister cannot close the
// channel between the map lookup and the send.
func (h *Hub) deliver(connectionID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.clients[connectionID]
	if !ok {
		return
	}

	select {
	case c.Send <- data:
	default:
		h.log.Warn("client buffer full, dropping notification",
			zap.String("connection_id", connectionID),
		)
	}
}
