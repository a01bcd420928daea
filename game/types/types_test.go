package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid_Wrap(t *testing.T) {
	g := Grid{Width: 32, Height: 24, CellSize: 20}
	tests := []struct {
		In       Point
		Expected Point
	}{
		{In: Point{X: 32, Y: 5}, Expected: Point{X: 0, Y: 5}},
		{In: Point{X: -1, Y: 5}, Expected: Point{X: 31, Y: 5}},
		{In: Point{X: 7, Y: 24}, Expected: Point{X: 7, Y: 0}},
		{In: Point{X: 7, Y: -1}, Expected: Point{X: 7, Y: 23}},
		{In: Point{X: 10, Y: 10}, Expected: Point{X: 10, Y: 10}},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, g.Wrap(test.In), "In: %v", test.In)
	}
}

func TestGrid_CenterAndPixel(t *testing.T) {
	g := Grid{Width: 640 / 20, Height: 480 / 20, CellSize: 20}
	require.Equal(t, 768, g.Cells())
	require.Equal(t, Point{X: 16, Y: 12}, g.Center())

	x, y := g.Pixel(g.Center())
	require.Equal(t, 320, x)
	require.Equal(t, 240, y)
	require.True(t, g.Contains(Point{X: 31, Y: 23}))
	require.False(t, g.Contains(Point{X: 32, Y: 0}))
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range Directions {
		require.Equal(t, d, d.Opposite().Opposite())
		require.Equal(t, Point{}, d.Vector().Add(d.Opposite().Vector()), "Direction: %s", d)
	}
}

func TestEvent_Direction(t *testing.T) {
	d, ok := EventLeft.Direction()
	require.True(t, ok)
	require.Equal(t, Left, d)

	_, ok = EventQuit.Direction()
	require.False(t, ok)
	require.True(t, EventEscape.Terminates())
	require.False(t, EventUp.Terminates())
}
