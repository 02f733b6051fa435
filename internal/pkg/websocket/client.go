package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512 * 1024 // 512KB
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development, in production you should restrict this
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is a middleman between the websocket connection and the dispatcher
type Client struct {
	hub *Hub

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound response frames
	send chan []byte

	// Dispatcher executing RPC requests
	dispatcher *Dispatcher

	// Logger instance
	logger zerolog.Logger
}

// readPump reads request frames from the connection and dispatches them.
// Each frame carries one request and yields exactly one response frame.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			// Don't log normal close conditions as warnings
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().
					Str("addr", c.conn.RemoteAddr().String()).
					Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().
					Err(err).
					Str("addr", c.conn.RemoteAddr().String()).
					Msg("Unexpected WebSocket close")
			} else {
				// Log other errors at debug level to avoid filling logs with normal disconnections
				c.logger.Debug().
					Err(err).
					Str("addr", c.conn.RemoteAddr().String()).
					Msg("WebSocket read error")
			}
			break
		}

		response := c.dispatcher.Dispatch(context.Background(), message)

		data, err := json.Marshal(response)
		if err != nil {
			c.logger.Error().
				Err(err).
				Str("addr", c.conn.RemoteAddr().String()).
				Msg("Failed to marshal RPC response")
			continue
		}

		c.send <- data
	}
}

// writePump writes response frames from the send channel to the connection.
// Responses are never batched into one frame; each request gets its own.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
