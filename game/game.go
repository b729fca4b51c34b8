package game

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// GameState is a value: every operation returns the next state over a cloned
// board and leaves the receiver untouched.
type GameState struct {
	Board          Board
	Status         Status
	FlagsRemaining int
	ElapsedTime    int // seconds
	FirstClick     bool
}

func NewGameState() GameState {
	return GameState{
		Board:          EmptyBoard(),
		Status:         Ready,
		FlagsRemaining: MineCount,
		ElapsedTime:    0,
		FirstClick:     true,
	}
}

// Clone returns a copy sharing nothing with state
func (state GameState) Clone() GameState {
	state.Board = state.Board.Clone()
	return state
}

// Won reports whether every safe cell has been revealed
func (state GameState) Won() bool {
	return state.Board.cleared()
}

func (state GameState) Reveal(pos Position, generator Generator) GameState {
	if state.Status.Terminal() {
		return state
	}

	cell := state.Board.At(pos)
	if cell.State == Flagged || cell.State == Revealed {
		return state
	}

	next := state.Clone()

	if next.FirstClick {
		generated := generator.Generate(pos)
		// keeps FlagsRemaining equal to MineCount minus the flagged cells
		carryFlags(state.Board, generated)

		next.Board = generated
		next.FirstClick = false
		next.Status = Playing
	}

	if next.Board.At(pos).IsMine {
		next.Board.revealMines()
		next.Status = Lost
		return next
	}

	Flood(next.Board, pos)

	if next.Status == Playing && next.Won() {
		next.Status = Won
	}

	return next
}

// carryFlags copies flags placed before the first reveal onto the generated
// board
func carryFlags(from, to Board) {
	for _, pos := range from.Positions() {
		if from.At(pos).State == Flagged {
			to.cellAt(pos).State = Flagged
		}
	}
}

func (state GameState) ToggleFlag(pos Position) GameState {
	if state.Status.Terminal() {
		return state
	}

	switch state.Board.At(pos).State {
	case Flagged:
		next := state.Clone()
		next.Board.cellAt(pos).State = Hidden
		next.FlagsRemaining = min(next.FlagsRemaining+1, MineCount)
		return next
	case Hidden:
		if state.FlagsRemaining <= 0 {
			return state
		}
		next := state.Clone()
		next.Board.cellAt(pos).State = Flagged
		next.FlagsRemaining--
		return next
	default:
		return state
	}
}

func (state GameState) Tick() GameState {
	if state.Status != Playing {
		return state
	}
	state.ElapsedTime++
	return state
}
