package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketManager fans chat events out to connected dashboard clients.
type WebSocketManager struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 32),
	}
}

func (manager *WebSocketManager) Start() {
	go manager.run()
}

func (manager *WebSocketManager) run() {
	for {
		select {
		case conn := <-manager.register:
			manager.mu.Lock()
			manager.clients[conn] = true
			manager.mu.Unlock()
			log.Info().Msg("Dashboard client connected")

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if _, ok := manager.clients[conn]; ok {
				delete(manager.clients, conn)
				conn.Close()
			}
			manager.mu.Unlock()
			log.Info().Msg("Dashboard client disconnected")

		case message := <-manager.broadcast:
			manager.mu.Lock()
			for conn := range manager.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Error().Err(err).Msg("Error writing to dashboard client")
					conn.Close()
					delete(manager.clients, conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// Broadcast queues a payload for all clients. Drops when the queue is
// full rather than stalling the sending handler.
func (manager *WebSocketManager) Broadcast(message []byte) {
	select {
	case manager.broadcast <- message:
	default:
		log.Warn().Msg("WebSocket broadcast channel full")
	}
}

func (manager *WebSocketManager) Register(conn *websocket.Conn) {
	manager.register <- conn
}

func (manager *WebSocketManager) Unregister(conn *websocket.Conn) {
	manager.unregister <- conn
}

func (manager *WebSocketManager) ClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

// chatEvent is the payload pushed to dashboard clients when a message
// is relayed.
type chatEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
	Role           string `json:"role"`
	Timestamp      string `json:"timestamp"`
}

// broadcastChatMessage pushes a newly relayed message to every
// connected dashboard.
func (s *Server) broadcastChatMessage(conversationID, message, role string) {
	event := chatEvent{
		Type:           "message_sent",
		ConversationID: conversationID,
		Message:        message,
		Role:           role,
		Timestamp:      time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Error marshaling chat event")
		return
	}

	s.wsManager.Broadcast(payload)
}
