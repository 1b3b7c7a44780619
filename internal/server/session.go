package server

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gravitas-games/hexfield/internal/config"
	"github.com/gravitas-games/hexfield/internal/field"
	"github.com/gravitas-games/hexfield/pkg/models"
)

// Session owns the generated field and tracks connected clients
type Session struct {
	ID        string
	CreatedAt time.Time

	// Client management
	clients     map[string]*models.Client // clientID -> Client
	connections map[string]*Connection    // clientID -> Connection
	mu          sync.RWMutex

	// The world served by this session
	field *field.Field

	// Configuration
	config *config.Config
}

// NewSession creates a session around a freshly generated field
func NewSession(cfg *config.Config) (*Session, error) {
	id := uuid.NewString()
	log.Printf("Creating session: %s", id)

	f := field.New(cfg.Field.ChunkRadius, cfg.Field.CellRadius, cfg.Field.Seed)

	session := &Session{
		ID:          id,
		CreatedAt:   time.Now(),
		clients:     make(map[string]*models.Client),
		connections: make(map[string]*Connection),
		field:       f,
		config:      cfg,
	}

	log.Printf("Session %s created with %d chunks", id, f.ChunkCount())
	return session, nil
}

// Field returns the session's world
func (s *Session) Field() *field.Field {
	return s.field
}

// AddClient registers a client with the session
func (s *Session) AddClient(client *models.Client, conn *Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[client.ID] = client
	s.connections[client.ID] = conn

	log.Printf("Client %s (%s) joined session %s", client.Username, client.ID, s.ID)
	return nil
}

// RemoveClient removes a client from the session
func (s *Session) RemoveClient(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if client, exists := s.clients[clientID]; exists {
		log.Printf("Client %s (%s) left session %s", client.Username, clientID, s.ID)
		delete(s.clients, clientID)
		delete(s.connections, clientID)
	}
}

// ClientCount returns the number of connected clients
func (s *Session) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// IsFull reports whether the session is at capacity
func (s *Session) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients) >= s.config.Session.MaxClients
}
