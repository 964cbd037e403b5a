package notifications

import (
	"fmt"
	"net/http"

	"aura-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// groupMessage is the inbound frame websocket clients send to manage group
// membership.
type groupMessage struct {
	Action string `json:"action"`
	Group  string `json:"group"`
}

// WebsocketHandler upgrades authenticated requests and wires the connection
// into the hub. The authenticated user's clinic group is joined automatically.
type WebsocketHandler struct {
	hub *Hub
	log *zap.Logger
}

func NewWebsocketHandler(hub *Hub, log *zap.Logger) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, log: log}
}

func (h *WebsocketHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.ContextUserIDKey).(string)
	clinicID, _ := r.Context().Value(constvars.ContextClinicIDKey).(string)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		ConnectionID: uuid.NewString(),
		UserID:       userID,
		Send:         make(chan []byte, 256),
	}

	h.hub.register(c)
	if clinicID != "" {
		h.hub.registry.JoinGroup(fmt.Sprintf(constvars.ClinicGroupFormat, clinicID), c.ConnectionID)
	}

	go h.writePump(c, conn)
	go h.readPump(c, conn)
}

func (h *WebsocketHandler) readPump(c *client, conn *websocket.Conn) {
	defer func() {
		h.hub.unregister(c)
		conn.Close()
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg groupMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}

		switch msg.Action {
		case "join_group":
			h.hub.registry.JoinGroup(msg.Group, c.ConnectionID)
		case "leave_group":
			h.hub.registry.LeaveGroup(msg.Group, c.ConnectionID)
		}
	}
}

func (h *WebsocketHandler) writePump(c *client, conn *websocket.Conn) {
	defer conn.Close()

	for message := range c.Send {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
