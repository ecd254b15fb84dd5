package push

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"tradbazar/pkg/logger"
)

// Client is one live notification socket for a user. A user may hold several
// connections (multiple tabs/devices).
type Client struct {
	Email string
	Conn  *websocket.Conn
	Send  chan []byte
}

// Hub tracks open notification sockets keyed by user email and pushes emitted
// notifications to them. Slow clients are dropped rather than blocking the
// emitting request.
type Hub struct {
	clients map[string]map[*Client]struct{}
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.clients[client.Email] == nil {
		h.clients[client.Email] = make(map[*Client]struct{})
	}
	h.clients[client.Email][client] = struct{}{}
	logger.Debug("Notification socket registered for %s", client.Email)
}

func (h *Hub) Unregister(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, ok := h.clients[client.Email]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.Send)
			if len(conns) == 0 {
				delete(h.clients, client.Email)
			}
		}
	}
}

// Push sends a JSON payload to every open socket for the user. It never
// blocks: a client whose buffer is full is disconnected. Sends happen while
// holding the read lock and Unregister closes under the write lock, so a send
// can never race a close.
func (h *Hub) Push(email string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("Failed to marshal push payload for %s: %v", email, err)
		return
	}

	var slow []*Client
	h.mutex.RLock()
	for client := range h.clients[email] {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	for _, client := range slow {
		h.Unregister(client)
	}
}

// WritePump drains the send channel onto the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// ReadPump discards inbound frames; the socket is push-only. It exists so the
// connection notices client disconnects promptly.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
