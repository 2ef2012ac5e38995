package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const sendBuffer = 16

// WSClient wraps one websocket connection. All outbound frames are queued on
// the send channel and written by a single goroutine (WriteLoop); gorilla
// connections do not support concurrent writers.
type WSClient struct {
	userID uint
	conn   *websocket.Conn

	send      chan []byte
	closeOnce sync.Once
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// WriteLoop drains queued payloads and interleaves keepalive pings. It is the
// connection's only writer and exits when the client is closed or the peer
// stops accepting frames.
func (c *WSClient) WriteLoop(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue never blocks: a slow or dead peer drops updates instead of stalling
// the caller. The next mutation pushes a fresh summary anyway.
func (c *WSClient) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}

func (c *WSClient) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// RealtimeHub fans the owner's refreshed daily summary out to their open
// websocket connections after meal and activity writes.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*WSClient]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client from the hub before closing it, so no
// broadcast can queue onto a closed channel.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// BroadcastSummary queues a payload for every connection the user holds.
// Delivery is best effort; the per-client writer goroutine does the actual
// network writes.
func (h *RealtimeHub) BroadcastSummary(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		c.enqueue(msg)
	}
}
