package game

const (
	BoardSize = 9
	MineCount = 10
)

type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (state CellState) String() string {
	switch state {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

type Status int

const (
	Ready Status = iota
	Playing
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further reveal or flag is accepted
func (status Status) Terminal() bool {
	return status == Won || status == Lost
}
