package game

import (
	"sort"

	"github.com/nanao-dev/bingo-party-backend/models"
)

// Evaluation is the win state of one card against a draw history.
type Evaluation struct {
	BingoCount   int   `json:"bingoCount"`
	IsBingo      bool  `json:"isBingo"`
	IsReach      bool  `json:"isReach"`
	ReachCount   int   `json:"reachCount"`
	ReachNumbers []int `json:"reachNumbers"`
}

// Evaluate scans the 12 lines (5 rows, 5 columns, 2 diagonals) of a card.
// A cell is marked if it is the FREE cell or its value has been drawn.
// Lines with all 5 cells marked count toward BingoCount. For each line with
// exactly 4 marks, the single missing value goes into a set; ReachCount is
// the size of that set, so two near-win lines waiting on the same number
// count as one reach — one punch finishes both.
func Evaluate(card models.Card, numbersDrawn []int) Evaluation {
	drawn := make(map[int]bool, len(numbersDrawn))
	for _, n := range numbersDrawn {
		drawn[n] = true
	}

	marked := func(r, c int) bool {
		v := card[r][c]
		return v == models.FreeCell || drawn[v]
	}

	lines := make([][][2]int, 0, 12)
	for r := 0; r < cardSize; r++ {
		line := make([][2]int, cardSize)
		for c := 0; c < cardSize; c++ {
			line[c] = [2]int{r, c}
		}
		lines = append(lines, line)
	}
	for c := 0; c < cardSize; c++ {
		line := make([][2]int, cardSize)
		for r := 0; r < cardSize; r++ {
			line[r] = [2]int{r, c}
		}
		lines = append(lines, line)
	}
	diag1 := make([][2]int, cardSize)
	diag2 := make([][2]int, cardSize)
	for i := 0; i < cardSize; i++ {
		diag1[i] = [2]int{i, i}
		diag2[i] = [2]int{i, cardSize - 1 - i}
	}
	lines = append(lines, diag1, diag2)

	var ev Evaluation
	reachSet := make(map[int]bool)
	for _, line := range lines {
		count := 0
		missing := 0
		for _, cell := range line {
			if marked(cell[0], cell[1]) {
				count++
			} else {
				missing = card[cell[0]][cell[1]]
			}
		}
		switch count {
		case cardSize:
			ev.BingoCount++
		case cardSize - 1:
			reachSet[missing] = true
		}
	}

	ev.IsBingo = ev.BingoCount > 0
	ev.ReachCount = len(reachSet)
	ev.IsReach = ev.ReachCount > 0
	ev.ReachNumbers = make([]int, 0, len(reachSet))
	for n := range reachSet {
		ev.ReachNumbers = append(ev.ReachNumbers, n)
	}
	sort.Ints(ev.ReachNumbers)
	return ev
}
