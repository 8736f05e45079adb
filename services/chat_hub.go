package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type ChatClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// ChatHub tracks the websocket sessions of each user so an advisory reply
// reaches every open session (phone and web), not just the one that asked.
type ChatHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*ChatClient]struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{clients: make(map[uint]map[*ChatClient]struct{})}
}

func (h *ChatHub) Register(c *ChatClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*ChatClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ChatHub) Unregister(c *ChatClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends a payload to all of a user's open sessions.
func (h *ChatHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
