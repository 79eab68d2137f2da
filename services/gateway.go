package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/models"
	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin filtering happens in the CORS layer.
		return true
	},
}

// errInvalidPayload answers frames that fail to decode; the real cause
// never leaves the process.
var errInvalidPayload = errors.New("Invalid payload")

// Gateway terminates websocket connections, decodes room-scoped actions,
// calls into the game service and relays results and broadcasts.
type Gateway struct {
	service *game.Service
	hub     *hub
}

func NewGateway(service *game.Service) *Gateway {
	return &Gateway{service: service, hub: newHub()}
}

// HandleWebSocket upgrades the request and starts the connection pumps.
func (g *Gateway) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		ref:     uuid.New().String(),
		conn:    conn,
		gateway: g,
		send:    make(chan []byte, 32),
	}
	logger.Infof("connection %s opened", client.ref)

	go client.writePump()
	go client.readPump()
}

func (g *Gateway) dispatch(c *Client, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Action == "" {
		c.enqueue(errorResponse{Type: "error", Error: "Invalid payload"})
		return
	}

	ctx := context.Background()
	fail := func(err error) {
		c.enqueue(errorResponse{Type: "error", Action: env.Action, Error: err.Error()})
	}

	switch env.Action {
	case "create_room":
		var req createRoomRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		roomID, err := g.service.CreateRoom(ctx, c.ref, req.Name)
		if err != nil {
			fail(err)
			return
		}
		g.hub.join(roomID, c)
		c.enqueue(createRoomResponse{Type: "create_room", RoomID: roomID})

	case "join_room":
		var req joinRoomRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		player, err := g.service.JoinRoom(ctx, req.RoomID, c.ref, req.Name, req.PlayerID)
		if err != nil {
			fail(err)
			return
		}
		room, err := g.service.GetRoom(ctx, req.RoomID)
		if err != nil {
			fail(err)
			return
		}
		g.hub.join(room.RoomID, c)
		g.hub.broadcast(room.RoomID, playerJoinedEvent{
			Type:         "player_joined",
			TotalPlayers: len(room.Players),
			Players:      room.PlayerList(),
		})
		c.enqueue(joinRoomResponse{
			Type:     "join_room",
			Player:   player,
			Status:   room.Status,
			RoomName: room.Name,
		})

	case "start_game":
		var req roomRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		if err := g.service.StartGame(ctx, req.RoomID, c.ref); err != nil {
			fail(err)
			return
		}
		code := game.NormalizeRoomCode(req.RoomID)
		g.hub.broadcast(code, gameStartedEvent{Type: "game_started", Status: models.StatusPlaying})
		c.enqueue(ackResponse{Type: "start_game"})

	case "draw_number":
		var req roomRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		number, err := g.service.DrawNumber(ctx, req.RoomID, c.ref)
		if err != nil {
			fail(err)
			return
		}
		room, err := g.service.GetRoom(ctx, req.RoomID)
		if err != nil {
			fail(err)
			return
		}
		// The number is only revealed to the room on an explicit
		// reveal_number, so the host UI can animate the suspense.
		c.enqueue(drawNumberResponse{Type: "draw_number", Number: number, History: room.NumbersDrawn})

	case "reveal_number":
		var req revealNumberRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		room, err := g.service.GetRoom(ctx, req.RoomID)
		if err != nil {
			fail(err)
			return
		}
		g.hub.broadcast(room.RoomID, numberDrawnEvent{
			Type:    "number_drawn",
			Number:  req.Number,
			History: room.NumbersDrawn,
		})
		c.enqueue(ackResponse{Type: "reveal_number"})

	case "punch_number":
		var req punchNumberRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		player, err := g.service.PunchNumber(ctx, req.RoomID, req.PlayerID, req.Number)
		if err != nil {
			fail(err)
			return
		}
		room, err := g.service.GetRoom(ctx, req.RoomID)
		if err != nil {
			fail(err)
			return
		}
		g.hub.broadcast(room.RoomID, playerUpdatedEvent{Type: "player_updated", Players: room.PlayerList()})
		c.enqueue(punchNumberResponse{Type: "punch_number", Player: player})

	case "claim_bingo":
		var req claimBingoRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		result, err := g.service.ClaimBingo(ctx, req.RoomID, req.PlayerID)
		if err != nil {
			fail(err)
			return
		}
		room, err := g.service.GetRoom(ctx, req.RoomID)
		if err != nil {
			fail(err)
			return
		}
		g.hub.broadcast(room.RoomID, playerUpdatedEvent{Type: "player_updated", Players: room.PlayerList()})
		g.announceWinStates(room, req.PlayerID, result)
		c.enqueue(claimBingoResponse{
			Type:       "claim_bingo",
			IsBingo:    result.IsBingo,
			IsReach:    result.IsReach,
			ReachCount: result.ReachCount,
			BingoCount: result.BingoCount,
		})

	case "reconnect_host":
		var req roomRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			fail(errInvalidPayload)
			return
		}
		room, err := g.service.ReconnectHost(ctx, req.RoomID, c.ref)
		if err != nil {
			fail(err)
			return
		}
		g.hub.join(room.RoomID, c)
		c.enqueue(reconnectHostResponse{
			Type:    "reconnect_host",
			Room:    roomView{RoomID: room.RoomID, Name: room.Name, Status: room.Status},
			Players: room.PlayerList(),
			History: room.NumbersDrawn,
		})

	default:
		c.enqueue(errorResponse{Type: "error", Action: env.Action, Error: "Unknown action"})
	}
}

// announceWinStates emits reach/bingo announcements only when the claimant
// is the sole holder of that status, so simultaneous ties do not spam the
// room.
func (g *Gateway) announceWinStates(room *models.Room, playerID string, result game.Evaluation) {
	player, ok := room.Players[playerID]
	if !ok {
		return
	}

	reachTotal := 0
	bingoTotal := 0
	for _, p := range room.Players {
		if p.IsReach && !p.IsBingo {
			reachTotal++
		}
		if p.IsBingo {
			bingoTotal++
		}
	}

	if result.IsReach && !result.IsBingo && reachTotal == 1 {
		g.hub.broadcast(room.RoomID, announceEvent{
			Type:       "reach_announced",
			PlayerID:   playerID,
			PlayerName: player.Name,
		})
	}
	if result.IsBingo && bingoTotal == 1 {
		g.hub.broadcast(room.RoomID, announceEvent{
			Type:       "bingo_announced",
			PlayerID:   playerID,
			PlayerName: player.Name,
		})
	}
}
