package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep9/clock"
	"github.com/they4kman/gosweep9/director/constraint"
	"github.com/they4kman/gosweep9/game"
	"github.com/they4kman/gosweep9/logging"
	"github.com/they4kman/gosweep9/ui"
)

var (
	autoplay         directorValue
	autoplayInterval string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal (default)",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg, logging.File, game.Log, constraint.Log); err != nil {
		return err
	}

	r := game.NewRand(cfg.Seed)
	engine := game.NewEngine(game.WithGenerator(game.NewGenerator(r)))
	clk := clock.New(cfg.TickEvery())
	defer clk.Stop()

	var opts []ui.Option
	if cfg.Autoplay != "" {
		d, err := newDirector(cfg.Autoplay, r)
		if err != nil {
			return err
		}
		opts = append(opts, ui.WithDirector(d, cfg.AutoplayEvery()))
	}

	game.Log.WithField("autoplay", cfg.Autoplay).Info("starting")
	_, err = tea.NewProgram(ui.New(engine, clk, opts...)).Run()
	return err
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().Var(newDirectorValue("", &autoplay), "autoplay", "Let a director play: random or constraint")
		cmd.Flags().StringVar(&autoplayInterval, "autoplay-interval", "300ms", "Delay between autoplayed moves")
	}
}
