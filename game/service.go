package game

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/nanao-dev/bingo-party-backend/models"
	"github.com/nanao-dev/bingo-party-backend/utils/logger"
)

const (
	roomCodeLength  = 6
	roomCodeChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAttempts = 5
)

// Service orchestrates room and player lifecycle: creation, join/reconnect,
// game start, draws, punches and bingo claims. Mutating operations on the
// same room are serialized by a per-room mutex; distinct rooms never
// contend with each other.
type Service struct {
	store RoomStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store RoomStore) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockRoom serializes mutations for one join code.
func (s *Service) lockRoom(code string) func() {
	s.mu.Lock()
	l, ok := s.locks[code]
	if !ok {
		l = &sync.Mutex{}
		s.locks[code] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// RoomSummary is the admin read model for one room.
type RoomSummary struct {
	RoomID      string            `json:"roomId"`
	Name        string            `json:"name"`
	Status      models.RoomStatus `json:"status"`
	PlayerCount int               `json:"playerCount"`
	BingoCount  int               `json:"bingoCount"`
	ReachCount  int               `json:"reachCount"`
}

func newRoomCode() string {
	b := make([]byte, roomCodeLength)
	for i := range b {
		b[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
	}
	return string(b)
}

// CreateRoom sanitizes the room name, generates a fresh join code and
// persists a WAITING room with an empty draw history. The code is
// regenerated on the unlikely collision with an existing room.
func (s *Service) CreateRoom(ctx context.Context, hostRef, name string) (string, error) {
	safeName, err := EnsureSafeRoomName(name)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newRoomCode()
		room := &models.Room{
			ID:                uuid.New().String(),
			RoomID:            code,
			Name:              safeName,
			HostConnectionRef: hostRef,
			Status:            models.StatusWaiting,
			NumbersDrawn:      []int{},
			Players:           make(map[string]*models.Player),
		}
		err := s.store.CreateRoom(ctx, room)
		if err == ErrCodeConflict {
			logger.Warnf("room code %s collided, regenerating", code)
			continue
		}
		if err != nil {
			return "", err
		}
		logger.Infof("room %s created by %s", code, hostRef)
		return code, nil
	}
	return "", ErrCodeConflict
}

// GetRoom looks up a room by join code, case-insensitively.
func (s *Service) GetRoom(ctx context.Context, code string) (*models.Room, error) {
	return s.store.GetRoom(ctx, NormalizeRoomCode(code))
}

// JoinRoom attaches a new player to a room, or reconnects an existing one
// when existingPlayerID is supplied. Reconnection keeps the player's card
// and win flags and only rebinds the connection ref and name; an unknown
// supplied id is an error, never a silent fresh join.
func (s *Service) JoinRoom(ctx context.Context, code, connRef, name, existingPlayerID string) (*models.Player, error) {
	code = NormalizeRoomCode(code)
	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.store.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if existingPlayerID != "" {
		player, ok := room.Players[existingPlayerID]
		if !ok {
			return nil, ErrPlayerNotFound
		}
		safeName, err := EnsureSafePlayerName(name)
		if err != nil {
			return nil, err
		}
		player.ConnectionRef = connRef
		player.Name = safeName
		if err := s.store.SaveRoom(ctx, room); err != nil {
			return nil, err
		}
		logger.Infof("player %s reconnected to room %s", player.ID, code)
		return player.Clone(), nil
	}

	safeName, err := EnsureSafePlayerName(name)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:            uuid.New().String(),
		ConnectionRef: connRef,
		Name:          safeName,
		Card:          GenerateCard(),
		IsReach:       false,
		IsBingo:       false,
	}
	room.Players[player.ID] = player
	if err := s.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	logger.Infof("player %s (%s) joined room %s", player.ID, safeName, code)
	return player.Clone(), nil
}

// StartGame moves the room to PLAYING and rebinds the host connection to
// the caller. Calling it again while already PLAYING is harmless.
func (s *Service) StartGame(ctx context.Context, code, hostRef string) error {
	code = NormalizeRoomCode(code)
	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.store.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	room.Status = models.StatusPlaying
	room.HostConnectionRef = hostRef
	return s.store.SaveRoom(ctx, room)
}

// DrawNumber appends a fresh random number in [1,75] to the room's draw
// history and returns it. The caller decides when to reveal it to players.
func (s *Service) DrawNumber(ctx context.Context, code, hostRef string) (int, error) {
	code = NormalizeRoomCode(code)
	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.store.GetRoom(ctx, code)
	if err != nil {
		return 0, err
	}
	if len(room.NumbersDrawn) >= MaxNumber {
		return 0, ErrAllNumbersDrawn
	}

	var number int
	for {
		number = rand.Intn(MaxNumber) + 1
		if !room.HasDrawn(number) {
			break
		}
	}
	room.NumbersDrawn = append(room.NumbersDrawn, number)
	room.HostConnectionRef = hostRef
	if err := s.store.SaveRoom(ctx, room); err != nil {
		return 0, err
	}
	logger.Infof("room %s drew %d (%d/%d)", code, number, len(room.NumbersDrawn), MaxNumber)
	return number, nil
}

// PunchNumber validates that a player may mark a number: it must already be
// drawn and must appear on the player's card. No punch state is stored;
// marks are reconstructed from the draw history on evaluation.
func (s *Service) PunchNumber(ctx context.Context, code, playerID string, number int) (*models.Player, error) {
	room, err := s.store.GetRoom(ctx, NormalizeRoomCode(code))
	if err != nil {
		return nil, err
	}
	player, ok := room.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if !room.HasDrawn(number) {
		return nil, ErrNumberNotDrawn
	}
	if !player.Card.Contains(number) {
		return nil, ErrNumberNotOnCard
	}
	return player.Clone(), nil
}

// ClaimBingo recomputes the player's win state from the card and the
// current draw history, persists the refreshed flags and returns the full
// evaluation. Idempotent; safe to call after every punch.
func (s *Service) ClaimBingo(ctx context.Context, code, playerID string) (Evaluation, error) {
	code = NormalizeRoomCode(code)
	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.store.GetRoom(ctx, code)
	if err != nil {
		return Evaluation{}, err
	}
	player, ok := room.Players[playerID]
	if !ok {
		return Evaluation{}, ErrPlayerNotFound
	}

	ev := Evaluate(player.Card, room.NumbersDrawn)
	player.IsBingo = ev.IsBingo
	player.IsReach = ev.IsReach
	if err := s.store.SaveRoom(ctx, room); err != nil {
		return Evaluation{}, err
	}
	if ev.IsBingo {
		logger.Infof("player %s in room %s has bingo (%d lines)", playerID, code, ev.BingoCount)
	}
	return ev, nil
}

// ReconnectHost rebinds the room's host connection to the caller and
// returns the room with its players and draw history.
func (s *Service) ReconnectHost(ctx context.Context, code, hostRef string) (*models.Room, error) {
	code = NormalizeRoomCode(code)
	unlock := s.lockRoom(code)
	defer unlock()

	room, err := s.store.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	room.HostConnectionRef = hostRef
	if err := s.store.SaveRoom(ctx, room); err != nil {
		return nil, err
	}
	return room.Clone(), nil
}

// ListRooms returns the admin summary of every room. Bingo/reach counts
// come from the cached per-player flags.
func (s *Service) ListRooms(ctx context.Context) ([]RoomSummary, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := RoomSummary{
			RoomID:      room.RoomID,
			Name:        room.Name,
			Status:      room.Status,
			PlayerCount: len(room.Players),
		}
		for _, p := range room.Players {
			if p.IsBingo {
				summary.BingoCount++
			}
			if p.IsReach {
				summary.ReachCount++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
