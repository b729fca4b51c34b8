package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var Directors = []string{"random", "constraint"}

type Config struct {
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Director playing on its own; empty means manual play
	Autoplay         string `yaml:"autoplay"`
	AutoplayInterval string `yaml:"autoplay_interval"`

	TickInterval string `yaml:"tick_interval"`
}

func Default() Config {
	return Config{
		Seed:             0,
		LogLevel:         "info",
		LogFile:          "gosweep.log",
		Autoplay:         "",
		AutoplayInterval: "300ms",
		TickInterval:     "1s",
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if cfg.Autoplay != "" && !isDirector(cfg.Autoplay) {
		errs = append(errs, fmt.Errorf("unknown director %q, want one of %v", cfg.Autoplay, Directors))
	}
	if _, err := cfg.autoplayInterval(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cfg.tickInterval(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func isDirector(name string) bool {
	for _, director := range Directors {
		if director == name {
			return true
		}
	}
	return false
}

func (cfg Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (cfg Config) AutoplayEvery() time.Duration {
	interval, _ := cfg.autoplayInterval()
	return interval
}

func (cfg Config) TickEvery() time.Duration {
	interval, _ := cfg.tickInterval()
	return interval
}

func (cfg Config) autoplayInterval() (time.Duration, error) {
	return parseInterval("autoplay_interval", cfg.AutoplayInterval)
}

func (cfg Config) tickInterval() (time.Duration, error) {
	return parseInterval("tick_interval", cfg.TickInterval)
}

func parseInterval(name, value string) (time.Duration, error) {
	interval, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", name, value)
	}
	return interval, nil
}
