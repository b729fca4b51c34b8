package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/director/constraint"
	"github.com/they4kman/gosweep9/game"
	"github.com/they4kman/gosweep9/logging"
)

// Enough to reveal or flag every cell twice over
const maxMovesPerGame = 2 * game.BoardSize * game.BoardSize

var (
	numGames    int
	simDirector directorValue
	layoutPath  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a director play many games headless and report its win rate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := logging.Setup(cfg, logging.Stderr, game.Log, constraint.Log); err != nil {
			return err
		}

		r := game.NewRand(cfg.Seed)
		generator, err := newGenerator(layoutPath, r)
		if err != nil {
			return err
		}

		d, err := newDirector(string(simDirector), r)
		if err != nil {
			return err
		}

		result := simulate(game.NewEngine(game.WithGenerator(generator)), d, numGames)
		game.Log.WithFields(logrus.Fields{
			"director": simDirector,
			"games":    result.Games,
			"won":      result.Won,
			"lost":     result.Lost,
		}).Info("simulation done")
		fmt.Printf("%s won %d of %d games (%.1f%%)\n", simDirector, result.Won, result.Games, 100*result.WinRate())
		return nil
	},
}

// newGenerator replays the layout file at path, or places mines at random
// when path is empty
func newGenerator(path string, r *rand.Rand) (game.Generator, error) {
	if path == "" {
		return game.NewGenerator(r), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	generator, err := game.NewFixedGenerator(string(data))
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return generator, nil
}

type simulation struct {
	Games, Won, Lost int
}

func (sim simulation) WinRate() float64 {
	if sim.Games == 0 {
		return 0
	}
	return float64(sim.Won) / float64(sim.Games)
}

func simulate(engine *game.Engine, d director.Director, games int) simulation {
	var result simulation
	for i := range games {
		engine.Reset()
		moves := director.Play(engine, d, maxMovesPerGame)

		state := engine.State()
		switch state.Status {
		case game.Won:
			result.Won++
		case game.Lost:
			result.Lost++
		}
		result.Games++

		game.Log.WithFields(logrus.Fields{
			"game":    i + 1,
			"status":  state.Status,
			"moves":   moves,
			"flagged": state.Board.CountState(game.Flagged),
		}).Debug("game over")
	}
	return result
}

func init() {
	simulateCmd.Flags().IntVarP(&numGames, "games", "n", 100, "Number of games to play")
	simulateCmd.Flags().Var(newDirectorValue("constraint", &simDirector), "director", "Director to play with: random or constraint")
	simulateCmd.Flags().StringVar(&layoutPath, "layout", "", "Replay every game on the board in this layout file")
}
