package store

import (
	"context"
	"sync"

	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/models"
)

// Memory is an in-process RoomStore: a map of rooms keyed by join code
// behind an RWMutex. Rooms are deep-copied on the way in and out so a
// caller that fails partway through an update never corrupts stored state.
type Memory struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

func NewMemory() *Memory {
	return &Memory{rooms: make(map[string]*models.Room)}
}

func (m *Memory) CreateRoom(_ context.Context, room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.RoomID]; ok {
		return game.ErrCodeConflict
	}
	m.rooms[room.RoomID] = room.Clone()
	return nil
}

func (m *Memory) GetRoom(_ context.Context, code string) (*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[code]
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	return room.Clone(), nil
}

func (m *Memory) SaveRoom(_ context.Context, room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.RoomID]; !ok {
		return game.ErrRoomNotFound
	}
	m.rooms[room.RoomID] = room.Clone()
	return nil
}

func (m *Memory) ListRooms(_ context.Context) ([]*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		out = append(out, room.Clone())
	}
	return out, nil
}
