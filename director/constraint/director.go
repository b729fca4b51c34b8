package constraint

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/director/random"
	"github.com/they4kman/gosweep9/game"
	"github.com/they4kman/gosweep9/util/collections"
)

var Log = logrus.New()

// Director plays moves deduced from the revealed numbers, and guesses only
// when no deduction is available
type Director struct {
	rand *rand.Rand
}

func New(r *rand.Rand) *Director {
	if r == nil {
		r = game.NewRand(0)
	}
	return &Director{rand: r}
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) isSubsetOf(other Observation) bool {
	if len(observation.cells) > len(other.cells) {
		return false
	}
	for cell := range observation.cells {
		if !other.cells.Contains(cell) {
			return false
		}
	}
	return true
}

func observe(state game.GameState) []Observation {
	board := state.Board
	var observations []Observation

	for _, pos := range board.Positions() {
		cell := board.At(pos)
		if !cell.IsRevealed() || cell.IsMine || cell.AdjacentMines == 0 {
			continue
		}

		observation := Observation{
			origin:   pos,
			numMines: cell.AdjacentMines,
			cells:    make(collections.Set[game.Position]),
		}
		for _, neighbor := range board.Neighbors(pos) {
			switch board.At(neighbor).State {
			case game.Flagged:
				observation.numMines--
			case game.Hidden:
				observation.cells.Add(neighbor)
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

// deduce returns the cells known to be safe and known to be mines
func deduce(observations []Observation) (safe, mines collections.Set[game.Position]) {
	safe = make(collections.Set[game.Position])
	mines = make(collections.Set[game.Position])

	settle := func(numMines int, cells collections.Set[game.Position]) {
		if len(cells) == 0 {
			return
		}
		switch numMines {
		case 0:
			for cell := range cells {
				safe.Add(cell)
			}
		case len(cells):
			for cell := range cells {
				mines.Add(cell)
			}
		}
	}

	for _, observation := range observations {
		settle(observation.numMines, observation.cells)
	}

	// A subset observation splits the remaining cells of its superset
	for i, observation := range observations {
		for j, other := range observations {
			if i == j || !observation.isSubsetOf(other) {
				continue
			}
			settle(other.numMines-observation.numMines, other.cells.Difference(observation.cells))
		}
	}

	return safe, mines
}

func (d *Director) Next(state game.GameState) (director.Move, bool) {
	board := state.Board

	if state.FirstClick {
		center := game.Position{Row: board.Size() / 2, Col: board.Size() / 2}
		return director.Move{Action: director.Reveal, Pos: center}, true
	}

	safe, mines := deduce(observe(state))

	// row-major order keeps the choice deterministic
	for _, pos := range board.Positions() {
		if safe.Contains(pos) {
			return director.Move{Action: director.Reveal, Pos: pos}, true
		}
	}
	if state.FlagsRemaining > 0 {
		for _, pos := range board.Positions() {
			if mines.Contains(pos) {
				return director.Move{Action: director.Flag, Pos: pos}, true
			}
		}
	}

	var guesses []game.Position
	for _, pos := range board.Positions() {
		if board.At(pos).IsHidden() && !mines.Contains(pos) {
			guesses = append(guesses, pos)
		}
	}

	pos, ok := random.Pick(d.rand, guesses)
	if !ok {
		return director.Move{}, false
	}

	Log.WithField("pos", pos).Debug("no deduction, guessing")
	return director.Move{Action: director.Reveal, Pos: pos}, true
}
