// Package push fans out best-effort booking-changed signals to websocket
// subscribers, typically the bay availability grid on location screens.
// Delivery is not correctness-relevant; a client that misses a signal just
// refreshes later.
package push

import (
	"sync"

	"github.com/gorilla/websocket"
)

type Hub struct {
	mu          sync.RWMutex
	connections map[int64][]*websocket.Conn // keyed by location id
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64][]*websocket.Conn),
	}
}

func (h *Hub) Register(locationID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[locationID] = append(h.connections[locationID], conn)
}

func (h *Hub) Unregister(locationID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.connections[locationID]
	for i, c := range conns {
		if c == conn {
			_ = c.Close()
			h.connections[locationID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.connections[locationID]) == 0 {
		delete(h.connections, locationID)
	}
}

// NotifyBookingChanged pushes a refresh signal to every subscriber of the
// location. Dead connections are dropped on write failure.
func (h *Hub) NotifyBookingChanged(locationID, bayID, bookingID int64) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, len(h.connections[locationID]))
	copy(conns, h.connections[locationID])
	h.mu.RUnlock()

	msg := map[string]int64{
		"location_id": locationID,
		"bay_id":      bayID,
		"booking_id":  bookingID,
	}
	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.Unregister(locationID, conn)
		}
	}
}

func (h *Hub) SubscriberCount(locationID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[locationID])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conns := range h.connections {
		for _, c := range conns {
			_ = c.Close()
		}
		delete(h.connections, id)
	}
}
