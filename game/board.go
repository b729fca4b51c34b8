package game

import "fmt"

type Board struct {
	size  int // in number of cells, per side
	cells [][]Cell
}

// NewBoard returns a size x size board of hidden, mine-free cells
func NewBoard(size int) Board {
	board := Board{
		size:  size,
		cells: make([][]Cell, size),
	}

	for row := 0; row < size; row++ {
		board.cells[row] = make([]Cell, size)
	}

	return board
}

// EmptyBoard is the board a game shows before its first reveal
func EmptyBoard() Board {
	return NewBoard(BoardSize)
}

func (board Board) Size() int {
	return board.size
}

func (board Board) NumCells() int {
	return board.size * board.size
}

func (board Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < board.size && pos.Col < board.size
}

// At returns a copy of the cell at pos. Positions outside the board are a
// caller error.
func (board Board) At(pos Position) Cell {
	return *board.cellAt(pos)
}

func (board Board) cellAt(pos Position) *Cell {
	if !board.Contains(pos) {
		panic(fmt.Sprintf("position %v outside %dx%d board", pos, board.size, board.size))
	}
	return &board.cells[pos.Row][pos.Col]
}

// Positions lists every position on the board in row-major order
func (board Board) Positions() []Position {
	positions := make([]Position, 0, board.NumCells())
	for row := 0; row < board.size; row++ {
		for col := 0; col < board.size; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}

func (board Board) Neighbors(pos Position) []Position {
	return Neighbors(pos, board.size)
}

func (board Board) NumMines() int {
	count := 0
	for _, row := range board.cells {
		for _, cell := range row {
			if cell.IsMine {
				count++
			}
		}
	}
	return count
}

// CountState returns the number of cells currently in the given state
func (board Board) CountState(state CellState) int {
	count := 0
	for _, row := range board.cells {
		for _, cell := range row {
			if cell.State == state {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy, so the copy can be mutated without the original
// observing it
func (board Board) Clone() Board {
	clone := Board{
		size:  board.size,
		cells: make([][]Cell, board.size),
	}
	for row := range board.cells {
		clone.cells[row] = append([]Cell(nil), board.cells[row]...)
	}
	return clone
}

func (board Board) cleared() bool {
	for _, row := range board.cells {
		for _, cell := range row {
			if !cell.IsMine && cell.State != Revealed {
				return false
			}
		}
	}
	return true
}

func (board Board) revealMines() {
	for row := range board.cells {
		for col := range board.cells[row] {
			if board.cells[row][col].IsMine {
				board.cells[row][col].State = Revealed
			}
		}
	}
}

func (board Board) countAdjacentMines() {
	for _, pos := range board.Positions() {
		cell := board.cellAt(pos)
		if cell.IsMine {
			cell.AdjacentMines = 0
			continue
		}

		cell.AdjacentMines = 0
		for _, neighbor := range board.Neighbors(pos) {
			if board.cellAt(neighbor).IsMine {
				cell.AdjacentMines++
			}
		}
	}
}
