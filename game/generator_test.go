package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAdjacency(t *testing.T, board Board) {
	t.Helper()
	for _, pos := range board.Positions() {
		cell := board.At(pos)
		if cell.IsMine {
			assert.Equal(t, 0, cell.AdjacentMines, "mine %v", pos)
			continue
		}

		want := 0
		for _, neighbor := range board.Neighbors(pos) {
			if board.At(neighbor).IsMine {
				want++
			}
		}
		assert.Equal(t, want, cell.AdjacentMines, "cell %v", pos)
	}
}

func TestGenerateAllFirstClicks(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewPCG(1, 2)))

	for _, first := range EmptyBoard().Positions() {
		board := gen.Generate(first)

		require.Equal(t, BoardSize, board.Size())
		assert.Equal(t, MineCount, board.NumMines(), "first click %v", first)
		assert.False(t, board.At(first).IsMine, "mine under first click %v", first)
		for _, neighbor := range board.Neighbors(first) {
			assert.False(t, board.At(neighbor).IsMine, "mine next to first click %v at %v", first, neighbor)
		}
		assert.Equal(t, board.NumCells(), board.CountState(Hidden))
		assertAdjacency(t, board)
	}
}

func TestGenerateCenterScenario(t *testing.T) {
	board := NewGenerator(nil).Generate(Position{4, 4})

	assert.Equal(t, 10, board.NumMines())
	for row := 3; row <= 5; row++ {
		for col := 3; col <= 5; col++ {
			assert.False(t, board.At(Position{row, col}).IsMine)
		}
	}
}

func TestGenerateSmallCandidatePool(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		first Position
		want  int
	}{
		{name: "3x3 center excludes everything", size: 3, first: Position{1, 1}, want: 0},
		{name: "3x3 corner leaves five", size: 3, first: Position{0, 0}, want: 5},
		{name: "4x4 edge leaves ten", size: 4, first: Position{0, 1}, want: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gen := NewSizedGenerator(test.size, MineCount, rand.New(rand.NewPCG(1, 2)))
			board := gen.Generate(test.first)

			assert.Equal(t, test.want, board.NumMines())
			assert.False(t, board.At(test.first).IsMine)
			assertAdjacency(t, board)
		})
	}
}

func TestGenerateSeeded(t *testing.T) {
	first := Position{0, 0}
	a := NewGenerator(NewRand(42)).Generate(first)
	b := NewGenerator(NewRand(42)).Generate(first)
	c := NewGenerator(NewRand(43)).Generate(first)

	assert.Equal(t, Layout(a), Layout(b))
	assert.NotEqual(t, Layout(a), Layout(c))
}

func TestGenerateUniform(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	gen := NewGenerator(rand.New(rand.NewPCG(3, 4)))
	first := Position{4, 4}
	counts := make(map[Position]int)

	const rounds = 20000
	for range rounds {
		board := gen.Generate(first)
		for _, pos := range board.Positions() {
			if board.At(pos).IsMine {
				counts[pos]++
			}
		}
	}

	// 72 candidates share 10 mines per round
	want := float64(rounds*MineCount) / 72
	assert.Len(t, counts, 72)
	for pos, count := range counts {
		assert.InDelta(t, want, float64(count), want*0.15, "cell %v", pos)
	}
}
