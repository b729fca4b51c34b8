package constraint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/game"
)

func playingState(t *testing.T, layout string, flagsRemaining int) game.GameState {
	t.Helper()
	board, err := game.ParseLayout(layout)
	require.NoError(t, err)
	return game.GameState{
		Board:          board,
		Status:         game.Playing,
		FlagsRemaining: flagsRemaining,
	}
}

func newDirector() *Director {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func TestFirstMoveIsCenter(t *testing.T) {
	move, ok := newDirector().Next(game.NewGameState())

	require.True(t, ok)
	assert.Equal(t, director.Move{Action: director.Reveal, Pos: game.Position{Row: 4, Col: 4}}, move)
}

func TestFlagsForcedMine(t *testing.T) {
	state := playingState(t, `
		o*.
		**.
		...`, game.MineCount)

	move, ok := newDirector().Next(state)

	require.True(t, ok)
	assert.Equal(t, director.Move{Action: director.Flag, Pos: game.Position{Row: 0, Col: 1}}, move)
}

func TestRevealsSatisfiedNeighbors(t *testing.T) {
	state := playingState(t, `
		oo.
		oF.
		...`, game.MineCount-1)

	move, ok := newDirector().Next(state)

	require.True(t, ok)
	assert.Equal(t, director.Move{Action: director.Reveal, Pos: game.Position{Row: 0, Col: 2}}, move)
}

func TestSubsetDeduction(t *testing.T) {
	state := playingState(t, `
		*...
		oooo
		oooo
		oooo`, game.MineCount)

	observations := observe(state)
	safe, mines := deduce(observations)

	assert.True(t, safe.Contains(game.Position{Row: 0, Col: 2}))
	assert.False(t, safe.Contains(game.Position{Row: 0, Col: 1}))
	assert.Equal(t, 0, mines.Len())

	move, ok := newDirector().Next(state)
	require.True(t, ok)
	assert.Equal(t, director.Move{Action: director.Reveal, Pos: game.Position{Row: 0, Col: 2}}, move)
}

func TestNoFlagsLeftFallsBackToGuess(t *testing.T) {
	state := playingState(t, `
		o*.
		**.
		...`, 0)
	known := []game.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	d := newDirector()

	for range 20 {
		move, ok := d.Next(state)

		require.True(t, ok)
		assert.Equal(t, director.Reveal, move.Action)
		assert.NotContains(t, known, move.Pos, "guessed a known mine")
		assert.True(t, state.Board.At(move.Pos).IsHidden())
	}
}

func TestNothingLeftToPlay(t *testing.T) {
	state := playingState(t, `
		o*
		**`, 0)

	_, ok := newDirector().Next(state)
	assert.False(t, ok)
}

func TestSolvesForcedBoard(t *testing.T) {
	gen, err := game.NewFixedGenerator(`
		.*.......
		**.......
		.........
		.........
		.........
		.........
		.........
		.........
		*******..`)
	require.NoError(t, err)

	engine := game.NewEngine(game.WithGenerator(gen))
	director.Play(engine, newDirector(), 100)

	state := engine.State()
	assert.Equal(t, game.Won, state.Status)
	assert.Equal(t, game.MineCount, state.Board.CountState(game.Flagged))
	assert.Equal(t, 0, state.FlagsRemaining)
}
