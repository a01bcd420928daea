package config

import (
	"os"
	"testing"

	"gridsnake/game/types"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	const name = "SNAKE_TEST_VALUE"
	defer os.Unsetenv(name)

	require.Equal(t, 7, getEnvInt(name, 7))

	os.Setenv(name, "42")
	require.Equal(t, 42, getEnvInt(name, 7))

	os.Setenv(name, "fast")
	require.Equal(t, 7, getEnvInt(name, 7))
}

func TestConfigGrid(t *testing.T) {
	c := Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 20, Speed: 20}
	require.NoError(t, c.Validate())
	require.Equal(t, types.Grid{Width: 32, Height: 24, CellSize: 20}, c.Grid())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		Name   string
		Config Config
	}{
		{Name: "zero cell", Config: Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 0, Speed: 20}},
		{Name: "uneven width", Config: Config{ScreenWidth: 650, ScreenHeight: 480, CellSize: 20, Speed: 20}},
		{Name: "tiny board", Config: Config{ScreenWidth: 20, ScreenHeight: 480, CellSize: 20, Speed: 20}},
		{Name: "no speed", Config: Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 20, Speed: 0}},
		{Name: "negative seed", Config: Config{ScreenWidth: 640, ScreenHeight: 480, CellSize: 20, Speed: 20, Seed: -1}},
	}

	for _, test := range tests {
		require.Error(t, test.Config.Validate(), test.Name)
	}
}
