package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/they4kman/gosweep9/clock"
	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/game"
)

type tickMsg time.Time

type autoplayMsg struct{}

// Model renders an engine and turns key presses into engine operations. The
// engine is only ever touched from Update, so it keeps a single writer.
type Model struct {
	engine *game.Engine
	clock  *clock.Clock

	director      director.Director
	autoplayEvery time.Duration

	cursor game.Position
	state  game.GameState
}

type Option func(*Model)

// WithDirector lets director play one move every interval
func WithDirector(d director.Director, interval time.Duration) Option {
	return func(model *Model) {
		model.director = d
		model.autoplayEvery = interval
	}
}

func New(engine *game.Engine, clk *clock.Clock, opts ...Option) Model {
	engine.OnChange(func(prev, next game.GameState) {
		clk.Sync(next.Status)
	})

	model := Model{
		engine: engine,
		clock:  clk,
		cursor: game.Position{Row: game.BoardSize / 2, Col: game.BoardSize / 2},
		state:  engine.State(),
	}
	for _, opt := range opts {
		opt(&model)
	}
	return model
}

func (model Model) State() game.GameState {
	return model.state
}

func (model Model) Cursor() game.Position {
	return model.cursor
}

func waitTick(clk *clock.Clock) tea.Cmd {
	return func() tea.Msg {
		return tickMsg(<-clk.Ticks())
	}
}

func (model Model) autoplay() tea.Cmd {
	return tea.Tick(model.autoplayEvery, func(time.Time) tea.Msg {
		return autoplayMsg{}
	})
}

func (model Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitTick(model.clock)}
	if model.director != nil {
		cmds = append(cmds, model.autoplay())
	}
	return tea.Batch(cmds...)
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		model.engine.Tick()
		cmd = waitTick(model.clock)

	case autoplayMsg:
		if !model.engine.Status().Terminal() {
			if move, ok := model.director.Next(model.engine.State()); ok {
				model.cursor = move.Pos
				director.Apply(model.engine, move)
			}
		}
		cmd = model.autoplay()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			model.clock.Stop()
			return model, tea.Quit
		case "up", "k", "w":
			model.cursor.Row = max(model.cursor.Row-1, 0)
		case "down", "j", "s":
			model.cursor.Row = min(model.cursor.Row+1, model.state.Board.Size()-1)
		case "left", "h", "a":
			model.cursor.Col = max(model.cursor.Col-1, 0)
		case "right", "l", "d":
			model.cursor.Col = min(model.cursor.Col+1, model.state.Board.Size()-1)
		case " ", "enter":
			model.engine.Reveal(model.cursor)
		case "f":
			model.engine.ToggleFlag(model.cursor)
		case "r":
			model.engine.Reset()
		}
	}

	model.state = model.engine.State()
	return model, cmd
}
