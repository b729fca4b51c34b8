package game

import (
	"github.com/sirupsen/logrus"
)

// ChangeFunc observes every state swap performed by an Engine
type ChangeFunc func(prev, next GameState)

// Engine owns the current GameState. It has a single writer: callers
// serialize Reveal, ToggleFlag, Tick and Reset themselves.
type Engine struct {
	state     GameState
	generator Generator
	log       *logrus.Entry

	observers []ChangeFunc
}

type Option func(*Engine)

func WithGenerator(generator Generator) Option {
	return func(engine *Engine) {
		engine.generator = generator
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(engine *Engine) {
		engine.log = log
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		state: NewGameState(),
	}
	for _, opt := range opts {
		opt(engine)
	}

	if engine.generator == nil {
		engine.generator = NewGenerator(nil)
	}
	if engine.log == nil {
		engine.log = logrus.NewEntry(Log)
	}

	return engine
}

// State returns a snapshot the caller may keep or modify freely
func (engine *Engine) State() GameState {
	return engine.state.Clone()
}

func (engine *Engine) Status() Status {
	return engine.state.Status
}

// OnChange registers fn to be called after every Reveal, ToggleFlag and Reset
// on an in-bounds position, and after every counted Tick
func (engine *Engine) OnChange(fn ChangeFunc) {
	engine.observers = append(engine.observers, fn)
}

func (engine *Engine) Reveal(pos Position) {
	if !engine.accepts(pos, "reveal") {
		return
	}
	engine.swap(engine.state.Reveal(pos, engine.generator), pos)
}

func (engine *Engine) ToggleFlag(pos Position) {
	if !engine.accepts(pos, "flag") {
		return
	}
	engine.swap(engine.state.ToggleFlag(pos), pos)
}

func (engine *Engine) Tick() {
	next := engine.state.Tick()
	if next.ElapsedTime == engine.state.ElapsedTime {
		return
	}
	engine.swap(next, Position{Row: -1, Col: -1})
}

func (engine *Engine) Reset() {
	engine.log.WithField("from", engine.state.Status).Info("new game")
	engine.swap(NewGameState(), Position{Row: -1, Col: -1})
}

// accepts rejects positions outside the board; grid-driven callers never
// produce them
func (engine *Engine) accepts(pos Position, op string) bool {
	if engine.state.Board.Contains(pos) {
		return true
	}
	engine.log.WithFields(logrus.Fields{
		"op":  op,
		"pos": pos,
	}).Warn("position outside board")
	return false
}

func (engine *Engine) swap(next GameState, pos Position) {
	prev := engine.state
	engine.state = next

	if prev.Status != next.Status {
		log := engine.log.WithFields(logrus.Fields{
			"from":    prev.Status,
			"to":      next.Status,
			"elapsed": next.ElapsedTime,
		})
		if next.Board.Contains(pos) {
			log = log.WithField("pos", pos)
		}
		log.Info("status changed")

		if next.Status.Terminal() && engine.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
			engine.log.Debug("final board\n" + Snapshot(next).Serialize())
		}
	}

	for _, observer := range engine.observers {
		observer(prev, next)
	}
}
