package game

import "fmt"

type Position struct {
	Row, Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type Cell struct {
	IsMine        bool
	State         CellState
	AdjacentMines int
}

func (cell Cell) IsHidden() bool {
	return cell.State == Hidden
}

func (cell Cell) IsRevealed() bool {
	return cell.State == Revealed
}

func (cell Cell) IsFlagged() bool {
	return cell.State == Flagged
}

// Neighbors returns the in-bounds positions adjacent to pos on a size x size
// grid, at most 8
func Neighbors(pos Position, size int) []Position {
	neighbors := make([]Position, 0, 8)

	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}

			row, col := pos.Row+dRow, pos.Col+dCol
			if row >= 0 && row < size && col >= 0 && col < size {
				neighbors = append(neighbors, Position{Row: row, Col: col})
			}
		}
	}

	return neighbors
}
