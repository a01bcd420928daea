package entity

import (
	"gridsnake/game/types"
)

// Snake is the player. Body[0] is the head.
type Snake struct {
	grid   types.Grid
	start  types.Point
	body   []types.Point
	length int

	// heading is the direction of the last completed move, next is the
	// direction the following move will take.
	heading types.Direction
	next    types.Direction
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		grid:  grid,
		start: grid.Center(),
	}
	s.Reset()
	return s
}

// Reset puts the snake back on its start cell, one cell long, moving right.
func (s *Snake) Reset() {
	if cap(s.body) < 2 {
		s.body = make([]types.Point, 0, 2)
	}
	s.body = append(s.body[:0], s.start)
	s.length = 1
	s.heading = types.Right
	s.next = types.Right
}

// SetDirection queues dir for the next move. Reversing onto the neck is
// silently ignored.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == s.heading.Opposite() {
		return
	}
	s.next = dir
}

// Direction returns the heading the next move will take.
func (s *Snake) Direction() types.Direction {
	return s.next
}

// Move advances the head one cell, wrapping at the edges, and drops the tail
// once the body is longer than the target length.
func (s *Snake) Move() {
	s.heading = s.next
	newHead := s.grid.Wrap(s.GetHead().Add(s.heading.Vector()))

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if len(s.body) > s.length {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

// Body returns the occupied cells, head first. The slice is only valid until
// the next Move or Reset.
func (s *Snake) Body() []types.Point {
	return s.body
}

// Length is the target length.
func (s *Snake) Length() int {
	return s.length
}

// Grow raises the target length by one. The body catches up on the next move.
func (s *Snake) Grow() {
	s.length++
}

// Draw paints the body, then the head on top.
func (s *Snake) Draw(c types.Canvas) {
	for _, p := range s.body[1:] {
		c.DrawCell(p, types.SnakeColor)
	}
	c.DrawCell(s.GetHead(), types.SnakeColor)
}
