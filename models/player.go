package models

// FreeCell is the sentinel value for the center card cell. 0 is never a
// drawable ball number, so it doubles as "always marked".
const FreeCell = 0

// Card is a 5x5 bingo grid, rows first. The center cell holds FreeCell.
type Card [][]int

// Contains reports whether n appears anywhere on the card.
func (c Card) Contains(n int) bool {
	for _, row := range c {
		for _, v := range row {
			if v == n {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := make(Card, len(c))
	for i, row := range c {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Player is a participant in a room. ID is stable across reconnects;
// ConnectionRef tracks whichever transport connection last joined as this
// player. IsReach/IsBingo are caches of the last win-state evaluation.
type Player struct {
	ID            string `json:"id"`
	ConnectionRef string `json:"-"`
	Name          string `json:"name"`
	Card          Card   `json:"card"`
	IsReach       bool   `json:"isReach"`
	IsBingo       bool   `json:"isBingo"`
}

func (p *Player) Clone() *Player {
	out := *p
	out.Card = p.Card.Clone()
	return &out
}
