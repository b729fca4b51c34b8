package game

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidLayout = errors.New("invalid board layout")

type BoardSnapshot struct {
	Status          string `yaml:"status"`
	Elapsed         int    `yaml:"elapsed"`
	FlagsRemaining  int    `yaml:"flags_remaining"`
	SerializedBoard string `yaml:"board,flow"`
}

func Snapshot(state GameState) *BoardSnapshot {
	return &BoardSnapshot{
		Status:          state.Status.String(),
		Elapsed:         state.ElapsedTime,
		FlagsRemaining:  state.FlagsRemaining,
		SerializedBoard: Layout(state.Board),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Board parses the serialized layout back into a board
func (snapshot *BoardSnapshot) Board() (Board, error) {
	return ParseLayout(snapshot.SerializedBoard)
}

func serializeCell(cell Cell) byte {
	switch {
	case cell.IsMine:
		switch cell.State {
		case Revealed:
			return 'X'
		case Flagged:
			return 'F'
		default:
			return '*'
		}
	case cell.State == Flagged:
		return 'f'
	case cell.State == Revealed:
		return 'o'
	default:
		return '.'
	}
}

func deserializeCell(c byte) (Cell, bool) {
	switch c {
	case 'X':
		return Cell{IsMine: true, State: Revealed}, true
	case 'F':
		return Cell{IsMine: true, State: Flagged}, true
	case '*':
		return Cell{IsMine: true, State: Hidden}, true
	case 'f':
		return Cell{State: Flagged}, true
	case 'o':
		return Cell{State: Revealed}, true
	case '.':
		return Cell{State: Hidden}, true
	default:
		return Cell{}, false
	}
}

// Layout renders the board one row per line:
//
//	*  hidden mine      .  hidden safe cell
//	F  flagged mine     f  flagged safe cell
//	X  revealed mine    o  revealed safe cell
func Layout(board Board) string {
	var b strings.Builder
	for row := range board.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range board.cells[row] {
			b.WriteByte(serializeCell(cell))
		}
	}
	return b.String()
}

// ParseLayout builds a board from the format written by Layout. Leading and
// trailing blank space around the grid and each row is ignored.
func ParseLayout(in string) (Board, error) {
	rows := strings.Split(strings.TrimSpace(in), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	size := len(rows)
	if size == 0 || rows[0] == "" {
		return Board{}, fmt.Errorf("%w: empty", ErrInvalidLayout)
	}

	board := NewBoard(size)
	for row, line := range rows {
		if len(line) != size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, row, len(line), size)
		}

		for col := 0; col < size; col++ {
			cell, ok := deserializeCell(line[col])
			if !ok {
				return Board{}, fmt.Errorf("%w: unknown cell %q at %v", ErrInvalidLayout, line[col], Position{Row: row, Col: col})
			}
			board.cells[row][col] = cell
		}
	}

	board.countAdjacentMines()

	return board, nil
}

// FixedGenerator hands out the same layout for every game, whatever the
// first position
type FixedGenerator struct {
	board Board
}

// NewFixedGenerator accepts only standard boards. Cell states in the layout
// are dropped, so every game starts with all cells hidden.
func NewFixedGenerator(layout string) (*FixedGenerator, error) {
	board, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}

	if board.Size() != BoardSize {
		return nil, fmt.Errorf("%w: %dx%d board, want %dx%d", ErrInvalidLayout, board.Size(), board.Size(), BoardSize, BoardSize)
	}
	if numMines := board.NumMines(); numMines != MineCount {
		return nil, fmt.Errorf("%w: %d mines, want %d", ErrInvalidLayout, numMines, MineCount)
	}

	for _, pos := range board.Positions() {
		board.cellAt(pos).State = Hidden
	}

	return &FixedGenerator{board: board}, nil
}

func (gen *FixedGenerator) Generate(Position) Board {
	return gen.board.Clone()
}
