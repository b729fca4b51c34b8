package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gosweep9/util/collections"
)

// Flood reveals start and, breadth-first, every cell reachable from it
// through zero-adjacency cells. Flagged and already revealed cells are left
// alone and never expanded. Returns the number of cells revealed.
func Flood(board Board, start Position) int {
	visited := make(collections.Set[Position])
	visitQueue := deque.New[Position]()
	numRevealed := 0

	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		pos := visitQueue.PopFront()

		// Don't visit, if already visited
		if visited.Contains(pos) {
			continue
		}
		visited.Add(pos)

		cell := board.cellAt(pos)
		if cell.State == Revealed || cell.State == Flagged {
			continue
		}

		cell.State = Revealed
		numRevealed++

		if cell.IsMine || cell.AdjacentMines != 0 {
			continue
		}

		for _, neighbor := range board.Neighbors(pos) {
			if !visited.Contains(neighbor) && board.cellAt(neighbor).State == Hidden {
				visitQueue.PushBack(neighbor)
			}
		}
	}

	return numRevealed
}
