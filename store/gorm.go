package store

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nanao-dev/bingo-party-backend/game"
	"github.com/nanao-dev/bingo-party-backend/models"
)

type roomRow struct {
	ID                string `gorm:"primaryKey"`
	RoomID            string `gorm:"uniqueIndex"`
	Name              string
	HostConnectionRef string
	Status            string
	NumbersDrawn      datatypes.JSON
}

func (roomRow) TableName() string { return "rooms" }

type playerRow struct {
	ID            uint   `gorm:"primaryKey"`
	PlayerID      string `gorm:"uniqueIndex"`
	RoomID        string `gorm:"index"`
	ConnectionRef string
	Name          string
	Card          datatypes.JSON
	IsReach       bool
	IsBingo       bool
}

func (playerRow) TableName() string { return "players" }

// Gorm is the postgres-backed RoomStore. Card grids and draw histories are
// stored as JSON columns; each SaveRoom runs in one transaction.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// AutoMigrate creates or updates the rooms and players tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomRow{}, &playerRow{})
}

func (g *Gorm) CreateRoom(ctx context.Context, room *models.Room) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&roomRow{}).Where("room_id = ?", room.RoomID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return game.ErrCodeConflict
		}
		row, err := toRoomRow(room)
		if err != nil {
			return err
		}
		return tx.Create(row).Error
	})
}

func (g *Gorm) GetRoom(ctx context.Context, code string) (*models.Room, error) {
	var row roomRow
	if err := g.db.WithContext(ctx).Where("room_id = ?", code).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrRoomNotFound
		}
		return nil, err
	}
	var playerRows []playerRow
	if err := g.db.WithContext(ctx).Where("room_id = ?", code).Find(&playerRows).Error; err != nil {
		return nil, err
	}
	return fromRows(&row, playerRows)
}

func (g *Gorm) SaveRoom(ctx context.Context, room *models.Room) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := toRoomRow(room)
		if err != nil {
			return err
		}
		res := tx.Model(&roomRow{}).Where("room_id = ?", room.RoomID).Updates(map[string]interface{}{
			"name":                row.Name,
			"host_connection_ref": row.HostConnectionRef,
			"status":              row.Status,
			"numbers_drawn":       row.NumbersDrawn,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return game.ErrRoomNotFound
		}

		for _, p := range room.Players {
			prow, err := toPlayerRow(room.RoomID, p)
			if err != nil {
				return err
			}
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "player_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"connection_ref", "name", "card", "is_reach", "is_bingo",
				}),
			}).Create(prow).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Gorm) ListRooms(ctx context.Context) ([]*models.Room, error) {
	var roomRows []roomRow
	if err := g.db.WithContext(ctx).Find(&roomRows).Error; err != nil {
		return nil, err
	}
	var playerRows []playerRow
	if err := g.db.WithContext(ctx).Find(&playerRows).Error; err != nil {
		return nil, err
	}

	byRoom := make(map[string][]playerRow)
	for _, p := range playerRows {
		byRoom[p.RoomID] = append(byRoom[p.RoomID], p)
	}

	out := make([]*models.Room, 0, len(roomRows))
	for i := range roomRows {
		room, err := fromRows(&roomRows[i], byRoom[roomRows[i].RoomID])
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, nil
}

func toRoomRow(room *models.Room) (*roomRow, error) {
	history, err := json.Marshal(room.NumbersDrawn)
	if err != nil {
		return nil, err
	}
	return &roomRow{
		ID:                room.ID,
		RoomID:            room.RoomID,
		Name:              room.Name,
		HostConnectionRef: room.HostConnectionRef,
		Status:            string(room.Status),
		NumbersDrawn:      datatypes.JSON(history),
	}, nil
}

func toPlayerRow(roomID string, p *models.Player) (*playerRow, error) {
	card, err := json.Marshal(p.Card)
	if err != nil {
		return nil, err
	}
	return &playerRow{
		PlayerID:      p.ID,
		RoomID:        roomID,
		ConnectionRef: p.ConnectionRef,
		Name:          p.Name,
		Card:          datatypes.JSON(card),
		IsReach:       p.IsReach,
		IsBingo:       p.IsBingo,
	}, nil
}

func fromRows(row *roomRow, playerRows []playerRow) (*models.Room, error) {
	room := &models.Room{
		ID:                row.ID,
		RoomID:            row.RoomID,
		Name:              row.Name,
		HostConnectionRef: row.HostConnectionRef,
		Status:            models.RoomStatus(row.Status),
		NumbersDrawn:      []int{},
		Players:           make(map[string]*models.Player, len(playerRows)),
	}
	if len(row.NumbersDrawn) > 0 {
		if err := json.Unmarshal(row.NumbersDrawn, &room.NumbersDrawn); err != nil {
			return nil, err
		}
	}
	for i := range playerRows {
		prow := &playerRows[i]
		player := &models.Player{
			ID:            prow.PlayerID,
			ConnectionRef: prow.ConnectionRef,
			Name:          prow.Name,
			IsReach:       prow.IsReach,
			IsBingo:       prow.IsBingo,
		}
		if len(prow.Card) > 0 {
			if err := json.Unmarshal(prow.Card, &player.Card); err != nil {
				return nil, err
			}
		}
		room.Players[player.ID] = player
	}
	return room, nil
}
