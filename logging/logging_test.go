package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep9/config"
)

func TestSetupStderr(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"
	logger := logrus.New()

	require.NoError(t, Setup(cfg, Stderr, logger))

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestSetupFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "gosweep.log")
	first, second := logrus.New(), logrus.New()

	require.NoError(t, Setup(cfg, File, first, second))

	first.WithField("pos", "(4, 4)").Info("status changed")
	second.Debug("guessing")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status changed")
	assert.Contains(t, string(data), "guessing")
	assert.Equal(t, logrus.DebugLevel, second.GetLevel())
}
