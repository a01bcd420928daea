package config

import (
	"os"
	"strconv"

	"gridsnake/game/types"

	"github.com/pkg/errors"
)

// Defaults for the board and pacing. Each can be overridden by environment
// and then by command line flags.
var (
	ScreenWidth  = getEnvInt("SNAKE_SCREEN_WIDTH", 640)
	ScreenHeight = getEnvInt("SNAKE_SCREEN_HEIGHT", 480)
	CellSize     = getEnvInt("SNAKE_CELL_SIZE", 20)
	Speed        = getEnvInt("SNAKE_SPEED", 20)
	Seed         = getEnvInt("SNAKE_SEED", 0)
)

// Config is the resolved game configuration.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	// Speed is the number of ticks per second.
	Speed int
	// Seed for food placement, 0 seeds from the clock.
	Seed int64
}

// Default returns the configuration built from the environment defaults.
func Default() Config {
	return Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		CellSize:     CellSize,
		Speed:        Speed,
		Seed:         int64(Seed),
	}
}

// Validate checks that the screen splits evenly into at least a 2x2 board.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return errors.Errorf("screen %dx%d is not a multiple of cell size %d", c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.ScreenWidth/c.CellSize < 2 || c.ScreenHeight/c.CellSize < 2 {
		return errors.Errorf("screen %dx%d holds fewer than 2x2 cells of size %d", c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.Speed < 1 {
		return errors.Errorf("speed must be at least 1 tick per second, got %d", c.Speed)
	}
	if c.Seed < 0 {
		return errors.Errorf("seed must not be negative, got %d", c.Seed)
	}
	return nil
}

// Grid derives the board from the screen and cell size.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:    c.ScreenWidth / c.CellSize,
		Height:   c.ScreenHeight / c.CellSize,
		CellSize: c.CellSize,
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
