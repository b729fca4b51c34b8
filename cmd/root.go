package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep9/config"
	"github.com/they4kman/gosweep9/director"
	"github.com/they4kman/gosweep9/director/constraint"
	"github.com/they4kman/gosweep9/director/random"
)

var (
	configPath string
	seed       int64
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a 9x9 Minesweeper game with 10 mines, played in the
terminal by a human or by a director.

Run with no arguments to play manually
	gosweep

Let the computer play for you
	gosweep --autoplay constraint

Measure how well a director does
	gosweep simulate --games 1000 --director constraint
`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and lets explicitly set flags override it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("autoplay") {
		cfg.Autoplay = string(autoplay)
	}
	if flags.Changed("autoplay-interval") {
		cfg.AutoplayInterval = autoplayInterval
	}

	return cfg, cfg.Validate()
}

func newDirector(name string, r *rand.Rand) (director.Director, error) {
	switch name {
	case "random":
		return random.New(r), nil
	case "constraint":
		return constraint.New(r), nil
	default:
		return nil, fmt.Errorf("unknown director %q", name)
	}
}

type directorValue string

func newDirectorValue(val string, p *directorValue) *directorValue {
	*p = directorValue(val)
	return p
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	for _, name := range config.Directors {
		if name == value {
			*dirVal = directorValue(value)
			return nil
		}
	}
	return fmt.Errorf("invalid director, want one of %s", strings.Join(config.Directors, ", "))
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.Int64Var(&seed, "seed", 0, "Seed for mine placement and directors (0 picks one at random)")
	flags.StringVar(&logLevel, "log-level", "info", "Minimum level to log: trace, debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "gosweep.log", "File receiving logs while the UI is running")

	rootCmd.AddCommand(playCmd, simulateCmd)
}
