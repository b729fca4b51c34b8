package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/they4kman/gosweep9/config"
)

type Target int

const (
	// Stderr is for headless commands
	Stderr Target = iota
	// File keeps the terminal free for the UI
	File
)

// Setup configures every given logger from cfg
func Setup(cfg config.Config, target Target, loggers ...*logrus.Logger) error {
	level := cfg.Level()

	var hook logrus.Hook
	if target == File {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter: &logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return fmt.Errorf("log file %s: %w", cfg.LogFile, err)
		}
	}

	for _, logger := range loggers {
		logger.SetLevel(level)

		switch target {
		case File:
			logger.SetOutput(io.Discard)
			logger.AddHook(hook)
		default:
			logger.SetOutput(os.Stderr)
			logger.SetFormatter(&logrus.TextFormatter{
				DisableTimestamp: true,
			})
		}
	}

	return nil
}
