package game

import (
	"math/rand"

	"github.com/nanao-dev/bingo-party-backend/models"
)

const (
	cardSize    = 5
	columnRange = 15
	// MaxNumber is the highest drawable ball.
	MaxNumber = cardSize * columnRange
)

// GenerateCard builds a random 5x5 card. Grid column j takes 5 distinct
// values from [15j+1, 15j+15]; the center cell is the FREE sentinel. Column
// ranges are disjoint, so no value repeats anywhere on the card.
func GenerateCard() models.Card {
	cols := make([][]int, cardSize)
	for j := 0; j < cardSize; j++ {
		col := make([]int, columnRange)
		for i := range col {
			col[i] = columnRange*j + i + 1
		}
		rand.Shuffle(len(col), func(a, b int) { col[a], col[b] = col[b], col[a] })
		cols[j] = col
	}

	card := make(models.Card, cardSize)
	for i := 0; i < cardSize; i++ {
		card[i] = make([]int, cardSize)
		for j := 0; j < cardSize; j++ {
			if i == 2 && j == 2 {
				card[i][j] = models.FreeCell
				continue
			}
			card[i][j] = cols[j][0]
			cols[j] = cols[j][1:]
		}
	}
	return card
}
