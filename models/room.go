package models

import "sort"

type RoomStatus string

const (
	StatusWaiting RoomStatus = "WAITING"
	StatusPlaying RoomStatus = "PLAYING"
	// StatusEnded is reserved. No code path assigns it yet.
	StatusEnded RoomStatus = "ENDED"
)

// Room is a bingo session. RoomID is the human-facing join code and is
// always stored uppercase; ID is the durable identifier behind it.
type Room struct {
	ID                string             `json:"id"`
	RoomID            string             `json:"roomId"`
	Name              string             `json:"name"`
	HostConnectionRef string             `json:"-"`
	Status            RoomStatus         `json:"status"`
	NumbersDrawn      []int              `json:"numbersDrawn"`
	Players           map[string]*Player `json:"-"`
}

// PlayerList returns the room's players sorted by name for stable output.
func (r *Room) PlayerList() []*Player {
	out := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// HasDrawn reports whether n is in the draw history.
func (r *Room) HasDrawn(n int) bool {
	for _, v := range r.NumbersDrawn {
		if v == n {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the room and its players.
func (r *Room) Clone() *Room {
	out := *r
	out.NumbersDrawn = append([]int(nil), r.NumbersDrawn...)
	out.Players = make(map[string]*Player, len(r.Players))
	for id, p := range r.Players {
		out.Players[id] = p.Clone()
	}
	return &out
}
