// Package socket holds the chat transport client: a websocket connection to
// the conversation gateway with a read pump and JSON message frames.
package socket

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	pingInterval = 10 * time.Second
	writeWait    = 10 * time.Second
)

// Frame is one chat message on the wire.
type Frame struct {
	ConversationID string `json:"conversation_id"`
	CharacterID    string `json:"character_id,omitempty"`
	Content        string `json:"content"`
	SentAt         string `json:"sent_at,omitempty"`
}

// Conn is a live chat connection. Incoming frames are delivered on Receive;
// the channel closes when the connection dies.
type Conn struct {
	ws      *websocket.Conn
	receive chan Frame

	mu     sync.Mutex
	closed bool
}

// Dial connects to the chat gateway for the given session. The endpoint is
// the gateway base URL; the session ID becomes the path segment the gateway
// routes on.
func Dial(ctx context.Context, endpoint string, sessionID string) (*Conn, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid chat endpoint")
	}
	u = u.JoinPath("chat", sessionID)
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial chat gateway")
	}

	conn := &Conn{
		ws:      ws,
		receive: make(chan Frame, 16),
	}
	go conn.readPump()
	go conn.pingLoop()

	return conn, nil
}

// Receive returns the channel of incoming frames.
func (c *Conn) Receive() <-chan Frame {
	return c.receive
}

// Send writes one frame to the gateway.
func (c *Conn) Send(frame Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("connection closed")
	}
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(frame)
}

// Close shuts the connection down. Safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	return c.ws.Close()
}

func (c *Conn) readPump() {
	defer close(c.receive)
	for {
		var frame Frame
		err := c.ws.ReadJSON(&frame)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Error("chat read failed", slog.String("error", err.Error()))
			}
			return
		}
		c.receive <- frame
	}
}

func (c *Conn) pingLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return
		}
		err := c.ws.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeWait))
		c.mu.Unlock()
		if err != nil {
			return
		}
	}
}
