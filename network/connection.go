package network

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cavern-realm/server/monitoring"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("connection closed")

// Connection wraps the WebSocket connection with its outgoing queue.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewConnection wraps ws with an outgoing queue of queueSize messages.
func NewConnection(ws *websocket.Conn, queueSize int) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, queueSize),
	}
}

// ReadPump reads messages from the WebSocket connection until it fails or
// the peer closes it. Messages are handled one at a time, in order.
func (c *Connection) ReadPump(h MessageHandler) {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				monitoring.Logf("Error reading message: %v", err)
			}
			return
		}

		h.HandleMessage(c, message)
	}
}

// WritePump drains the send queue onto the socket and keeps the peer alive
// with pings. It returns once Close has been called and the queue is empty.
func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage queues msg for the client. A full queue means the client is
// not keeping up, so the connection is dropped.
func (c *Connection) SendMessage(msg interface{}) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConnectionClosed
	}

	select {
	case c.send <- messageBytes:
		return nil
	default:
		c.closed = true
		close(c.send)
		return errors.New("send queue full")
	}
}

// Close stops the write pump after it flushes queued messages. It is safe to
// call more than once.
func (c *Connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Disconnect closes the underlying socket, which unblocks ReadPump.
func (c *Connection) Disconnect() {
	c.Close()
	c.ws.Close()
}

// RemoteAddr returns the peer address.
func (c *Connection) RemoteAddr() string {
	return c.ws.RemoteAddr().String()
}

// MessageHandler interface for handling messages
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}
