package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/models"
)

func testRoom(code string) *models.Room {
	return &models.Room{
		ID:           "id-" + code,
		RoomID:       code,
		Name:         "Test Room",
		Status:       models.StatusWaiting,
		NumbersDrawn: []int{},
		Players:      make(map[string]*models.Player),
	}
}

func TestMemory_CreateAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateRoom(ctx, testRoom("ABC123")))

	room, err := m.GetRoom(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "Test Room", room.Name)

	_, err = m.GetRoom(ctx, "XXXXXX")
	assert.ErrorIs(t, err, game.ErrRoomNotFound)
}

func TestMemory_CreateConflict(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateRoom(ctx, testRoom("ABC123")))
	assert.ErrorIs(t, m.CreateRoom(ctx, testRoom("ABC123")), game.ErrCodeConflict)
}

func TestMemory_SaveUnknownRoom(t *testing.T) {
	m := NewMemory()
	assert.ErrorIs(t, m.SaveRoom(context.Background(), testRoom("ABC123")), game.ErrRoomNotFound)
}

func TestMemory_GetReturnsIsolatedCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateRoom(ctx, testRoom("ABC123")))

	// Mutating a fetched room must not leak into the store until saved.
	room, err := m.GetRoom(ctx, "ABC123")
	require.NoError(t, err)
	room.NumbersDrawn = append(room.NumbersDrawn, 42)
	room.Players["p1"] = &models.Player{ID: "p1", Name: "Player 1"}

	fresh, err := m.GetRoom(ctx, "ABC123")
	require.NoError(t, err)
	assert.Empty(t, fresh.NumbersDrawn)
	assert.Empty(t, fresh.Players)

	require.NoError(t, m.SaveRoom(ctx, room))
	saved, err := m.GetRoom(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, []int{42}, saved.NumbersDrawn)
	assert.Len(t, saved.Players, 1)
}

func TestMemory_ListRooms(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateRoom(ctx, testRoom("AAAAAA")))
	require.NoError(t, m.CreateRoom(ctx, testRoom("BBBBBB")))

	rooms, err := m.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
