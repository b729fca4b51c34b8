package random

import (
	"math/rand/v2"

	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/game"
)

// Director reveals hidden, unflagged cells in a random order fixed when it
// first sees a board
type Director struct {
	rand  *rand.Rand
	order []game.Position
}

func New(r *rand.Rand) *Director {
	if r == nil {
		r = game.NewRand(0)
	}
	return &Director{rand: r}
}

func (d *Director) Next(state game.GameState) (director.Move, bool) {
	if len(d.order) != state.Board.NumCells() {
		d.order = state.Board.Positions()
		d.rand.Shuffle(len(d.order), func(i, j int) {
			d.order[i], d.order[j] = d.order[j], d.order[i]
		})
	}

	for _, pos := range d.order {
		if state.Board.At(pos).IsHidden() {
			return director.Move{Action: director.Reveal, Pos: pos}, true
		}
	}
	return director.Move{}, false
}

// Pick returns a random position among candidates
func Pick(r *rand.Rand, candidates []game.Position) (game.Position, bool) {
	if len(candidates) == 0 {
		return game.Position{}, false
	}
	return candidates[r.IntN(len(candidates))], true
}
