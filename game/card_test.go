package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanao-dev/bingo-party-backend/models"
)

func TestGenerateCard_Shape(t *testing.T) {
	card := GenerateCard()

	require.Len(t, card, 5)
	for _, row := range card {
		require.Len(t, row, 5)
	}
	assert.Equal(t, models.FreeCell, card[2][2])
}

func TestGenerateCard_ColumnRanges(t *testing.T) {
	for i := 0; i < 50; i++ {
		card := GenerateCard()
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				if r == 2 && c == 2 {
					continue
				}
				v := card[r][c]
				assert.GreaterOrEqual(t, v, 15*c+1)
				assert.LessOrEqual(t, v, 15*c+15)
			}
		}
	}
}

func TestGenerateCard_DistinctValues(t *testing.T) {
	for i := 0; i < 50; i++ {
		card := GenerateCard()

		seen := make(map[int]int)
		for _, row := range card {
			for _, v := range row {
				seen[v]++
			}
		}

		// 24 distinct non-zero values plus exactly one free cell.
		assert.Len(t, seen, 25)
		assert.Equal(t, 1, seen[models.FreeCell])
		for v, n := range seen {
			if v != models.FreeCell {
				assert.Equal(t, 1, n, "value %d appears %d times", v, n)
			}
		}
	}
}
