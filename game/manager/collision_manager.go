package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager answers the per-tick collision questions. The board wraps,
// so there is no wall collision.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision reports whether the snake's head overlaps its own body.
// Only cells after the head count, and the tail has already been trimmed, so
// entering the cell the tail just left is not a collision.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	body := snake.Body()
	head := snake.GetHead()
	for i := 1; i < len(body); i++ {
		if body[i] == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return cm.grid.Wrap(pos) == food.Position()
}
