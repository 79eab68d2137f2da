package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/models"
	"github.com/nanao-dev/bingo-party-backend/store"
)

// pendingFrames drains everything currently buffered on a client's send
// channel without blocking.
func pendingFrames(t *testing.T, c *Client) []map[string]any {
	t.Helper()
	var frames []map[string]any
	for {
		select {
		case data := <-c.send:
			var m map[string]any
			require.NoError(t, json.Unmarshal(data, &m))
			frames = append(frames, m)
		default:
			return frames
		}
	}
}

func TestHub_BroadcastSurvivesClosedConnection(t *testing.T) {
	h := newHub()

	gone := &Client{ref: "gone", send: make(chan []byte, 1)}
	alive := &Client{ref: "alive", send: make(chan []byte, 1)}
	h.join("ROOM01", gone)
	h.join("ROOM01", alive)

	// A disconnecting client closes its channel after the member
	// snapshot is taken; the broadcast must carry on to the rest.
	close(gone.send)
	require.NotPanics(t, func() {
		h.broadcast("ROOM01", gameStartedEvent{Type: "game_started", Status: models.StatusPlaying})
	})

	frames := pendingFrames(t, alive)
	require.Len(t, frames, 1)
	assert.Equal(t, "game_started", frames[0]["type"])
}

func announceFixture(t *testing.T) (*Gateway, *Client, *models.Room) {
	t.Helper()
	g := NewGateway(game.NewService(store.NewMemory()))
	watcher := &Client{ref: "watcher", send: make(chan []byte, 8)}
	g.hub.join("ROOM01", watcher)

	room := &models.Room{
		RoomID: "ROOM01",
		Status: models.StatusPlaying,
		Players: map[string]*models.Player{
			"p1": {ID: "p1", Name: "Player 1"},
			"p2": {ID: "p2", Name: "Player 2"},
		},
	}
	return g, watcher, room
}

func TestAnnounceWinStates_SoleReachHolder(t *testing.T) {
	g, watcher, room := announceFixture(t)
	room.Players["p1"].IsReach = true

	g.announceWinStates(room, "p1", game.Evaluation{IsReach: true, ReachCount: 1})

	frames := pendingFrames(t, watcher)
	require.Len(t, frames, 1)
	assert.Equal(t, "reach_announced", frames[0]["type"])
	assert.Equal(t, "p1", frames[0]["playerId"])
	assert.Equal(t, "Player 1", frames[0]["playerName"])
}

func TestAnnounceWinStates_TiedReachSuppressed(t *testing.T) {
	g, watcher, room := announceFixture(t)
	room.Players["p1"].IsReach = true
	room.Players["p2"].IsReach = true

	g.announceWinStates(room, "p2", game.Evaluation{IsReach: true, ReachCount: 1})

	assert.Empty(t, pendingFrames(t, watcher))
}

func TestAnnounceWinStates_SoleBingoHolder(t *testing.T) {
	g, watcher, room := announceFixture(t)
	room.Players["p1"].IsReach = true
	room.Players["p1"].IsBingo = true

	g.announceWinStates(room, "p1", game.Evaluation{IsBingo: true, IsReach: true, BingoCount: 1})

	frames := pendingFrames(t, watcher)
	require.Len(t, frames, 1)
	assert.Equal(t, "bingo_announced", frames[0]["type"])
	assert.Equal(t, "p1", frames[0]["playerId"])
}

func TestAnnounceWinStates_TiedBingoSuppressed(t *testing.T) {
	g, watcher, room := announceFixture(t)
	room.Players["p1"].IsBingo = true
	room.Players["p2"].IsBingo = true

	g.announceWinStates(room, "p2", game.Evaluation{IsBingo: true, BingoCount: 1})

	assert.Empty(t, pendingFrames(t, watcher))
}
