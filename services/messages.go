package services

import (
	"github.com/nanao-dev/bingo-party-backend/models"
)

// Client frames are JSON objects tagged with "action"; server frames are
// tagged with "type". Every action has an explicit payload type so nothing
// past this file handles untyped maps.

type envelope struct {
	Action string `json:"action"`
}

type createRoomRequest struct {
	Name string `json:"name"`
}

type joinRoomRequest struct {
	RoomID   string `json:"roomId"`
	Name     string `json:"name"`
	PlayerID string `json:"playerId"`
}

type roomRequest struct {
	RoomID string `json:"roomId"`
}

type revealNumberRequest struct {
	RoomID string `json:"roomId"`
	Number int    `json:"number"`
}

type punchNumberRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Number   int    `json:"number"`
}

type claimBingoRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type errorResponse struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Error  string `json:"error"`
}

type ackResponse struct {
	Type string `json:"type"`
}

type createRoomResponse struct {
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

type joinRoomResponse struct {
	Type     string            `json:"type"`
	Player   *models.Player    `json:"player"`
	Status   models.RoomStatus `json:"status"`
	RoomName string            `json:"roomName"`
}

type drawNumberResponse struct {
	Type    string `json:"type"`
	Number  int    `json:"number"`
	History []int  `json:"history"`
}

type punchNumberResponse struct {
	Type   string         `json:"type"`
	Player *models.Player `json:"player"`
}

type claimBingoResponse struct {
	Type       string `json:"type"`
	IsBingo    bool   `json:"isBingo"`
	IsReach    bool   `json:"isReach"`
	ReachCount int    `json:"reachCount"`
	BingoCount int    `json:"bingoCount"`
}

type roomView struct {
	RoomID string            `json:"roomId"`
	Name   string            `json:"name"`
	Status models.RoomStatus `json:"status"`
}

type reconnectHostResponse struct {
	Type    string           `json:"type"`
	Room    roomView         `json:"room"`
	Players []*models.Player `json:"players"`
	History []int            `json:"history"`
}

// Broadcast events.

type playerJoinedEvent struct {
	Type         string           `json:"type"`
	TotalPlayers int              `json:"totalPlayers"`
	Players      []*models.Player `json:"players"`
}

type playerUpdatedEvent struct {
	Type    string           `json:"type"`
	Players []*models.Player `json:"players"`
}

type gameStartedEvent struct {
	Type   string            `json:"type"`
	Status models.RoomStatus `json:"status"`
}

type numberDrawnEvent struct {
	Type    string `json:"type"`
	Number  int    `json:"number"`
	History []int  `json:"history"`
}

type announceEvent struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}
