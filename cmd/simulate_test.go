package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep9/director/constraint"
	"github.com/they4kman/gosweep9/director/random"
	"github.com/they4kman/gosweep9/game"
)

func TestSimulateConstraintOnForcedBoard(t *testing.T) {
	// every safe cell opens from the center and the mines are all forced
	gen, err := game.NewFixedGenerator(`
		.........
		.........
		.........
		.........
		.........
		.........
		.........
		........*
		*********`)
	require.NoError(t, err)

	result := simulate(game.NewEngine(game.WithGenerator(gen)), constraint.New(game.NewRand(1)), 3)

	assert.Equal(t, simulation{Games: 3, Won: 3}, result)
	assert.Equal(t, 1.0, result.WinRate())
}

func TestSimulateCountsEveryGame(t *testing.T) {
	r := game.NewRand(7)
	result := simulate(game.NewEngine(game.WithGenerator(game.NewGenerator(r))), random.New(r), 20)

	assert.Equal(t, 20, result.Games)
	assert.Equal(t, result.Games, result.Won+result.Lost)
}

func TestWinRateWithoutGames(t *testing.T) {
	assert.Zero(t, simulation{}.WinRate())
}

func TestDirectorValue(t *testing.T) {
	var val directorValue
	newDirectorValue("constraint", &val)
	assert.Equal(t, "constraint", val.String())

	require.NoError(t, val.Set("random"))
	assert.Equal(t, "random", val.String())
	assert.Error(t, val.Set("oracle"))
	assert.Equal(t, "random", val.String())
}

func TestNewDirector(t *testing.T) {
	d, err := newDirector("random", nil)
	require.NoError(t, err)
	assert.IsType(t, &random.Director{}, d)

	_, err = newDirector("", nil)
	assert.Error(t, err)
}

func writeLayout(t *testing.T, layout string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))
	return path
}

func TestNewGeneratorFromLayoutFile(t *testing.T) {
	path := writeLayout(t, `
.*.......
**.......
.........
.........
.........
.........
.........
.........
*******..
`)

	generator, err := newGenerator(path, nil)
	require.NoError(t, err)
	assert.IsType(t, &game.FixedGenerator{}, generator)

	r := game.NewRand(3)
	result := simulate(game.NewEngine(game.WithGenerator(generator)), random.New(r), 20)
	assert.Equal(t, 20, result.Won+result.Lost)
}

func TestNewGeneratorRejectsBadLayouts(t *testing.T) {
	small := strings.Repeat("*****\n", 2) + strings.Repeat(".....\n", 3)

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.txt"), target: fs.ErrNotExist},
		{name: "not a layout", path: writeLayout(t, "hello"), target: game.ErrInvalidLayout},
		{name: "5x5 board", path: writeLayout(t, small), target: game.ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, err := newGenerator(tt.path, nil)
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, generator)
		})
	}
}

func TestNewGeneratorWithoutLayout(t *testing.T) {
	generator, err := newGenerator("", game.NewRand(1))
	require.NoError(t, err)
	assert.IsType(t, &game.RandomGenerator{}, generator)
}
