package services

import (
	"encoding/json"
	"sync"

	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

// hub tracks which live connections belong to which room so broadcasts can
// be scoped. Player records outlive connections; the hub only deals in
// transport state.
type hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func newHub() *hub {
	return &hub{rooms: make(map[string]map[*Client]struct{})}
}

// join moves a client into a room, leaving any previous one.
func (h *hub) join(code string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detach(c)
	members, ok := h.rooms[code]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[code] = members
	}
	members[c] = struct{}{}
	c.roomID = code
}

func (h *hub) leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detach(c)
}

// detach removes a client from its room; caller holds h.mu.
func (h *hub) detach(c *Client) {
	if c.roomID == "" {
		return
	}
	if members, ok := h.rooms[c.roomID]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	c.roomID = ""
}

// broadcast sends v to every connection in the room.
func (h *hub) broadcast(code string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("broadcast marshal failed: %v", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[code]))
	for c := range h.rooms[code] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		// A client can disconnect between the snapshot above and this
		// send, closing its channel; recover so one dead connection
		// never takes the process down.
		func(c *Client) {
			defer func() {
				if r := recover(); r != nil {
					logger.Warnf("recovered broadcast to connection %s: %v", c.ref, r)
				}
			}()
			select {
			case c.send <- data:
			default:
				logger.Warnf("dropping broadcast to connection %s, buffer full", c.ref)
			}
		}(c)
	}
}
