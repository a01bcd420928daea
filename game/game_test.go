package game

import (
	"testing"

	"gridsnake/game/types"

	"github.com/stretchr/testify/require"
)

// commonGrid is the 640x480 board with 20px cells.
var commonGrid = types.Grid{Width: 640 / 20, Height: 480 / 20, CellSize: 20}

// sequence replays fixed values, cycling when exhausted.
type sequence struct {
	values []int
	i      int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

type fakeRenderer struct {
	clears   []types.Color
	cells    []types.Point
	colors   []types.Color
	presents int
	err      error
}

func (r *fakeRenderer) Clear(c types.Color) {
	r.clears = append(r.clears, c)
	r.cells = nil
	r.colors = nil
}

func (r *fakeRenderer) DrawCell(p types.Point, c types.Color) {
	r.cells = append(r.cells, p)
	r.colors = append(r.colors, c)
}

func (r *fakeRenderer) Present() error {
	r.presents++
	return r.err
}

func TestGameTickEatsFood(t *testing.T) {
	rng := &sequence{values: []int{17, 12, 17, 12, 17, 12, 5, 6}}
	g := NewGame(commonGrid, rng)
	require.Equal(t, types.Point{X: 17, Y: 12}, g.Food().Position())
	require.Equal(t, types.Point{X: 16, Y: 12}, g.Snake().GetHead())

	x, y := g.Grid.Pixel(g.Snake().GetHead())
	require.Equal(t, []int{320, 240}, []int{x, y})

	require.True(t, g.Tick(nil))
	head := g.Snake().GetHead()
	require.Equal(t, types.Point{X: 17, Y: 12}, head)
	x, y = g.Grid.Pixel(head)
	require.Equal(t, []int{340, 240}, []int{x, y})
	require.Len(t, g.Snake().Body(), 1)

	require.Equal(t, 2, g.Snake().Length())
	require.Equal(t, types.Point{X: 5, Y: 6}, g.Food().Position())
	require.NotContains(t, g.Snake().Body(), g.Food().Position())

	require.True(t, g.Tick(nil))
	require.Equal(t, []types.Point{{X: 18, Y: 12}, {X: 17, Y: 12}}, g.Snake().Body())

	stats := g.Stats()
	require.Equal(t, 2, stats.Ticks)
	require.Equal(t, 1, stats.FoodEaten)
	require.Equal(t, 2, stats.BestLength)
}

func TestGameTickSelfCollisionResets(t *testing.T) {
	rng := &sequence{values: []int{0, 0}}
	g := NewGame(commonGrid, rng)
	for i := 0; i < 4; i++ {
		g.Snake().Grow()
	}

	require.True(t, g.Tick(nil))
	require.True(t, g.Tick([]types.Event{types.EventDown}))
	require.True(t, g.Tick([]types.Event{types.EventLeft}))

	// Park the food on the cell the head is about to bite.
	rng.values = []int{16, 12}
	require.True(t, g.Food().RandomizePosition(nil))

	require.True(t, g.Tick([]types.Event{types.EventUp}))
	require.Equal(t, []types.Point{{X: 16, Y: 12}}, g.Snake().Body())
	require.Equal(t, 1, g.Snake().Length())
	require.Equal(t, types.Right, g.Snake().Direction())

	// The food check is skipped on the reset tick.
	require.Equal(t, types.Point{X: 16, Y: 12}, g.Food().Position())
	require.Equal(t, 0, g.Stats().FoodEaten)
	require.Equal(t, 1, g.Stats().Resets)
}

func TestGameTickLastDirectionWins(t *testing.T) {
	g := NewGame(commonGrid, &sequence{values: []int{0, 0}})
	require.True(t, g.Tick([]types.Event{types.EventUp, types.EventLeft, types.EventDown}))
	require.Equal(t, types.Point{X: 16, Y: 13}, g.Snake().GetHead())
}

func TestGameTickQuit(t *testing.T) {
	for _, ev := range []types.Event{types.EventQuit, types.EventEscape} {
		g := NewGame(commonGrid, &sequence{values: []int{0, 0}})
		require.False(t, g.Tick([]types.Event{types.EventUp, ev}))
		require.Equal(t, types.Point{X: 16, Y: 12}, g.Snake().GetHead())
		require.Equal(t, 0, g.Stats().Ticks)
	}
}

func TestGameDraw(t *testing.T) {
	g := NewGame(commonGrid, &sequence{values: []int{3, 4}})
	g.Snake().Grow()
	g.Tick(nil)

	r := &fakeRenderer{}
	require.NoError(t, g.Draw(r))
	require.Equal(t, []types.Color{types.BackgroundColor}, r.clears)
	require.Equal(t, []types.Point{{X: 16, Y: 12}, {X: 17, Y: 12}, {X: 3, Y: 4}}, r.cells)
	require.Equal(t, []types.Color{types.SnakeColor, types.SnakeColor, types.FoodColor}, r.colors)
	require.Equal(t, 1, r.presents)
}
