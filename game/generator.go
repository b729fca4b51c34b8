package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep9/util/collections"
)

// Generator produces a freshly mined board around the first revealed position
type Generator interface {
	Generate(first Position) Board
}

type RandomGenerator struct {
	size, numMines int
	rand           *rand.Rand
}

// NewGenerator returns a generator for the standard board. A nil r draws a
// randomly seeded source.
func NewGenerator(r *rand.Rand) *RandomGenerator {
	return NewSizedGenerator(BoardSize, MineCount, r)
}

func NewSizedGenerator(size, numMines int, r *rand.Rand) *RandomGenerator {
	if r == nil {
		r = NewRand(0)
	}
	return &RandomGenerator{
		size:     size,
		numMines: numMines,
		rand:     r,
	}
}

// NewRand returns a PCG source seeded with seed, or from the runtime hash
// seed when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func (gen *RandomGenerator) Size() int {
	return gen.size
}

func (gen *RandomGenerator) NumMines() int {
	return gen.numMines
}

// Generate places mines anywhere except first and its neighbors. When fewer
// candidates remain than mines requested, every candidate becomes a mine.
func (gen *RandomGenerator) Generate(first Position) Board {
	board := NewBoard(gen.size)

	excluded := collections.NewSet(board.Neighbors(first)...)
	excluded.Add(first)
	candidates := excluded.Filter(board.Positions())

	numMines := min(gen.numMines, len(candidates))

	// Partial Fisher-Yates: the first numMines slots end up a uniform sample
	for i := 0; i < numMines; i++ {
		j := i + gen.rand.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]

		board.cellAt(candidates[i]).IsMine = true
	}

	board.countAdjacentMines()

	Log.WithFields(logrus.Fields{
		"first": first,
		"mines": numMines,
	}).Debug("generated board")

	return board
}
