package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler for WebSocket connections
type Handler struct {
	hub        *Hub
	dispatcher *Dispatcher
	logger     zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, dispatcher *Dispatcher, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:        hub,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for RPC access
// @Description Upgrades the HTTP connection to WebSocket; each text frame carries one JSON-RPC request ({"id", "method", "params"}) and receives one response frame
// @Tags websocket
// @Accept json
// @Produce json
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 400 {object} gin.H "Upgrade failed"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	// Create a new client and register it with the hub
	client := &Client{
		hub:        h.hub,
		conn:       conn,
		send:       make(chan []byte, 256),
		dispatcher: h.dispatcher,
		logger:     h.logger,
	}
	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
