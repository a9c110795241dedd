// Package websocket pushes new notifications to connected clients.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"inventario/src/models"
	"inventario/src/store"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

const EventNotificationCreated = "NOTIFICATION_CREATED"

// Event is the frame sent to clients.
type Event struct {
	Type      string              `json:"type"`
	Data      models.Notification `json:"data"`
	Timestamp time.Time           `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session string
}

// Hub fans store notifications out to every connected client. A client whose
// buffer is full is dropped.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]bool
	closed  bool

	unsubscribe func()
	logger      *logrus.Logger
}

// NewHub subscribes to dataStore; Close undoes it.
func NewHub(dataStore store.DataStore, logger *logrus.Logger) *Hub {
	h := &Hub{
		clients: map[*client]bool{},
		logger:  logger,
	}
	h.unsubscribe = dataStore.Subscribe(h.Broadcast)
	return h
}

func (h *Hub) Broadcast(notification models.Notification) {
	data, err := json.Marshal(Event{
		Type:      EventNotificationCreated,
		Data:      notification,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal notification event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.WithField("session", c.session).Warn("dropping slow websocket client")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ServeWS upgrades the request and streams events until the client leaves.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		session: sessionID,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		conn.Close()
		return nil
	}
	h.clients[c] = true
	h.mu.Unlock()

	h.logger.WithField("session", sessionID).Debug("websocket client connected")
	go c.writePump()
	go c.readPump()
	return nil
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close stops listening to the store and disconnects everyone.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}

// readPump only exists to notice the peer going away and to answer pings.
func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.WithError(err).WithField("session", c.session).Debug("websocket read failed")
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
