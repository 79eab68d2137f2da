package game

import (
	"context"
	"errors"

	"github.com/nanao-dev/bingo-party-backend/models"
)

// ErrCodeConflict is returned by RoomStore.CreateRoom when the generated
// join code is already in use. The service regenerates and retries.
var ErrCodeConflict = errors.New("room code already in use")

// RoomStore is the persistence boundary for rooms and their players. Room
// codes passed in are already normalized. Implementations must make each
// call atomic: a failed call leaves no partial state, and GetRoom must not
// alias memory that a later SaveRoom would mutate.
type RoomStore interface {
	// CreateRoom persists a new room; fails with ErrCodeConflict if a room
	// with the same join code exists.
	CreateRoom(ctx context.Context, room *models.Room) error
	// GetRoom fetches a room by join code; fails with ErrRoomNotFound.
	GetRoom(ctx context.Context, code string) (*models.Room, error)
	// SaveRoom replaces a room's stored state, players included.
	SaveRoom(ctx context.Context, room *models.Room) error
	// ListRooms returns every stored room.
	ListRooms(ctx context.Context) ([]*models.Room, error)
}
