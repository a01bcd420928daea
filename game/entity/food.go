package entity

import (
	"gridsnake/game/types"
)

// Randomizer is the subset of a random source food placement needs.
// *golang.org/x/exp/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// maxPlacementAttempts bounds rejection sampling per board cell before
// placement falls back to enumerating the free cells.
const maxPlacementAttempts = 16

// Food is the single item on the board.
type Food struct {
	grid     types.Grid
	rng      Randomizer
	position types.Point
}

// NewFood creates food on a random cell not in occupied.
func NewFood(grid types.Grid, rng Randomizer, occupied []types.Point) *Food {
	f := &Food{
		grid: grid,
		rng:  rng,
	}
	f.position = f.randomPoint()
	f.RandomizePosition(occupied)
	return f
}

func (f *Food) Position() types.Point {
	return f.position
}

// RandomizePosition moves the food to a uniformly random cell that is not in
// occupied. It returns false and leaves the food where it was when every
// cell is occupied.
func (f *Food) RandomizePosition(occupied []types.Point) bool {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if f.grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}
	if len(taken) >= f.grid.Cells() {
		return false
	}

	limit := maxPlacementAttempts * f.grid.Cells()
	for i := 0; i < limit; i++ {
		p := f.randomPoint()
		if _, ok := taken[p]; !ok {
			f.position = p
			return true
		}
	}

	free := unoccupiedPoints(f.grid, taken)
	f.position = free[f.rng.Intn(len(free))]
	return true
}

func (f *Food) randomPoint() types.Point {
	return types.Point{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}

func unoccupiedPoints(grid types.Grid, taken map[types.Point]struct{}) []types.Point {
	candidates := make([]types.Point, 0, grid.Cells()-len(taken))
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}

func (f *Food) Draw(c types.Canvas) {
	c.DrawCell(f.position, types.FoodColor)
}
