package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Renderer is the drawing surface a frontend provides. Clear starts a
// frame and Present finishes it.
type Renderer interface {
	types.Canvas
	Clear(c types.Color)
	Present() error
}

// Game owns the snake and the food and applies the per-tick rules.
type Game struct {
	Session string
	Grid    types.Grid

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	turn         int
}

// NewRandomizer returns the random source food placement uses. A zero seed
// seeds from the clock.
func NewRandomizer(seed uint64) entity.Randomizer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func NewGame(grid types.Grid, rng entity.Randomizer) *Game {
	snake := entity.NewSnake(grid)
	g := &Game{
		Session:      uuid.New().String(),
		Grid:         grid,
		snake:        snake,
		food:         entity.NewFood(grid, rng, snake.Body()),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(),
	}
	snakeLength.Set(float64(snake.Length()))

	log.WithFields(log.Fields{
		"Session": g.Session,
		"Width":   grid.Width,
		"Height":  grid.Height,
		"Food":    g.food.Position(),
	}).Info("game started")
	return g
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// Tick applies the pending input and advances the game one step. It returns
// false when an event asked to quit; the board is left untouched in that case.
func (g *Game) Tick(events []types.Event) bool {
	defer instrument("update")()

	for _, ev := range events {
		if ev.Terminates() {
			return false
		}
		if dir, ok := ev.Direction(); ok {
			g.snake.SetDirection(dir)
		}
	}

	g.turn++
	g.stateMgr.RecordTick()
	ticksTotal.Inc()

	g.snake.Move()
	head := g.snake.GetHead()

	if g.collisionMgr.IsSelfCollision(g.snake) {
		log.WithFields(log.Fields{
			"Session": g.Session,
			"Turn":    g.turn,
			"Length":  g.snake.Length(),
			"Head":    head,
		}).Info("snake bit itself, resetting")
		g.snake.Reset()
		g.stateMgr.RecordReset()
		resetsTotal.Inc()
		snakeLength.Set(float64(g.snake.Length()))
		return true
	}

	if g.collisionMgr.IsFoodCollision(head, g.food) {
		g.snake.Grow()
		g.stateMgr.RecordFood(g.snake.Length())
		foodEatenTotal.Inc()
		snakeLength.Set(float64(g.snake.Length()))
		bestLength.Set(float64(g.stateMgr.BestLength()))

		if !g.food.RandomizePosition(g.snake.Body()) {
			log.WithFields(log.Fields{
				"Session": g.Session,
				"Turn":    g.turn,
				"Length":  g.snake.Length(),
			}).Warn("no free cell left for food, keeping previous position")
		}
		log.WithFields(log.Fields{
			"Session": g.Session,
			"Turn":    g.turn,
			"Length":  g.snake.Length(),
			"Food":    g.food.Position(),
		}).Debug("snake ate")
	}
	return true
}

// Draw renders one frame: background, snake body, head, food.
func (g *Game) Draw(r Renderer) error {
	defer instrument("draw")()

	r.Clear(types.BackgroundColor)
	g.snake.Draw(r)
	g.food.Draw(r)
	return r.Present()
}
