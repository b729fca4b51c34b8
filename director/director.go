package director

import (
	"fmt"

	"github.com/they4kman/gosweep9/game"
)

type Action int

const (
	Reveal Action = iota
	Flag
)

func (action Action) String() string {
	switch action {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

type Move struct {
	Action Action
	Pos    game.Position
}

func (move Move) String() string {
	return fmt.Sprintf("%s %v", move.Action, move.Pos)
}

// Director picks moves for a game it does not own. It only ever sees
// snapshots; the caller applies the move to the engine.
type Director interface {
	// Next returns the move to play in state, or false when the director has
	// nothing to play
	Next(state game.GameState) (Move, bool)
}

func Apply(engine *game.Engine, move Move) {
	switch move.Action {
	case Reveal:
		engine.Reveal(move.Pos)
	case Flag:
		engine.ToggleFlag(move.Pos)
	}
}

// Play lets director drive engine until the game ends, the director gives up
// or maxMoves moves were played. Returns the number of moves played.
func Play(engine *game.Engine, director Director, maxMoves int) int {
	moves := 0
	for moves < maxMoves && !engine.Status().Terminal() {
		move, ok := director.Next(engine.State())
		if !ok {
			break
		}
		Apply(engine, move)
		moves++
	}
	return moves
}
