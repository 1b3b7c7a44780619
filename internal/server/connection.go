package server

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gravitas-games/hexfield/internal/network"
	"github.com/gravitas-games/hexfield/pkg/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	ws *websocket.Conn

	server *Server

	// Client identity (set after authentication)
	client *models.Client

	// Buffered channel for outbound messages
	send chan []byte

	authenticated bool
}

// NewConnection creates a new connection
func NewConnection(ws *websocket.Conn, server *Server) *Connection {
	return &Connection{
		ws:            ws,
		server:        server,
		send:          make(chan []byte, 256),
		authenticated: false,
	}
}

// Handle manages the connection lifecycle
func (c *Connection) Handle() {
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Start the write pump before greeting so the welcome can flush
	go c.writePump()

	// Register with the session and greet before serving queries
	c.client.Connected = true
	c.client.ConnectedAt = time.Now()
	c.client.SessionID = c.server.session.ID
	if err := c.server.session.AddClient(c.client, c); err != nil {
		log.Printf("Failed to add client to session: %v", err)
		c.SendError("join_failed", "Failed to join session")
		c.Close()
		return
	}
	c.sendWelcome()

	c.readPump() // Blocking
}

// readPump pumps messages from the WebSocket connection to the server
func (c *Connection) readPump() {
	defer func() {
		c.Close()
	}()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		var clientMsg network.ClientMessage
		if err := json.Unmarshal(message, &clientMsg); err != nil {
			log.Printf("Failed to parse client message: %v", err)
			c.SendError("invalid_message", "Failed to parse message")
			continue
		}

		c.handleMessage(&clientMsg)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Connection) writePump() {
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
				// Channel closed
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.ctx.Done():
			// Server shutting down
			return
		}
	}
}

// handleMessage routes queries to the evaluation functions
func (c *Connection) handleMessage(msg *network.ClientMessage) {
	c.client.LastSeen = time.Now()

	switch msg.Type {
	case network.MsgTypeAdjacent:
		var q network.AdjacentQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalAdjacent(q) })

	case network.MsgTypeNeighbors:
		var q network.NeighborsQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalNeighbors(q) })

	case network.MsgTypeRing:
		var q network.RingQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalRing(q) })

	case network.MsgTypeArea:
		var q network.AreaQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalArea(q) })

	case network.MsgTypeDistance:
		var q network.DistanceQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalDistance(q) })

	case network.MsgTypeLine:
		var q network.LineQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) { return evalLine(q) })

	case network.MsgTypeTerrain:
		var q network.TerrainQuery
		c.handleQuery(msg, &q, func() (*network.ServerMessage, error) {
			return evalTerrain(c.server.session.Field(), q)
		})

	case network.MsgTypePing:
		c.SendMessage(&network.ServerMessage{
			Type:    network.MsgTypePong,
			Payload: map[string]interface{}{"timestamp": time.Now().Unix()},
		})

	default:
		log.Printf("Unknown message type: %s", msg.Type)
		c.SendError("unknown_message_type", "Unknown message type")
	}
}

// handleQuery decodes the payload into q and replies with the
// evaluation result or a coded error
func (c *Connection) handleQuery(msg *network.ClientMessage, q interface{}, eval func() (*network.ServerMessage, error)) {
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, q); err != nil {
			log.Printf("Failed to parse %s payload: %v", msg.Type, err)
			c.SendError("invalid_payload", "Failed to parse query payload")
			return
		}
	}

	resp, err := eval()
	if err != nil {
		c.SendError(codeFor(err), err.Error())
		return
	}
	c.SendMessage(resp)
}

// sendWelcome greets a freshly joined client
func (c *Connection) sendWelcome() {
	f := c.server.session.Field()
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeWelcome,
		Payload: network.WelcomePayload{
			ClientID:    c.client.ID,
			Username:    c.client.Username,
			SessionID:   c.server.session.ID,
			FieldSeed:   f.Seed(),
			ChunkCount:  f.ChunkCount(),
			CellRadius:  f.CellRadius,
			ClientCount: c.server.session.ClientCount(),
		},
	})
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *network.ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal message: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("Send buffer full, dropping message")
	}
}

// SendError sends an error message to the client
func (c *Connection) SendError(code, message string) {
	c.SendMessage(&network.ServerMessage{
		Type: network.MsgTypeError,
		Payload: network.ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Close closes the connection
func (c *Connection) Close() {
	if c.authenticated && c.client != nil {
		c.server.session.RemoveClient(c.client.ID)
	}

	close(c.send)
	c.ws.Close()
}
