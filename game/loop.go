package game

import (
	"context"

	"gridsnake/game/types"

	log "github.com/sirupsen/logrus"
)

// Input yields the events received since the last call. It never blocks.
type Input interface {
	Poll() []types.Event
}

// Clock blocks just long enough to hold the loop at rate ticks per second.
type Clock interface {
	Tick(ctx context.Context, rate int) error
}

// Loop drives a Game with a frontend's input, renderer and clock. Frontends
// that own their own main loop call Game.Tick and Game.Draw directly instead.
type Loop struct {
	Game     *Game
	Input    Input
	Renderer Renderer
	Clock    Clock
	Speed    int
}

// Run ticks until a quit event arrives, the context is cancelled or the
// frontend fails. A quit event returns nil.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		stats := l.Game.Stats()
		log.WithFields(log.Fields{
			"Session":    l.Game.Session,
			"Ticks":      stats.Ticks,
			"Resets":     stats.Resets,
			"FoodEaten":  stats.FoodEaten,
			"BestLength": stats.BestLength,
			"Duration":   stats.Duration,
		}).Info("game loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := l.Clock.Tick(ctx, l.Speed); err != nil {
			return err
		}
		if !l.Game.Tick(l.Input.Poll()) {
			return nil
		}
		if err := l.Game.Draw(l.Renderer); err != nil {
			return err
		}
	}
}
