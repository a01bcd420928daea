package types

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota + 1
	Right
	Down
	Left
)

// Directions lists every heading, clockwise from Up.
var Directions = []Direction{Up, Right, Down, Left}

// Vector converts a Direction into a unit step.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Event is a discrete input event delivered by a frontend.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventUp
	EventDown
	EventLeft
	EventRight
	EventEscape
)

// Direction maps a directional event to its heading.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case EventUp:
		return Up, true
	case EventDown:
		return Down, true
	case EventLeft:
		return Left, true
	case EventRight:
		return Right, true
	default:
		return 0, false
	}
}

// Terminates reports whether e ends the game.
func (e Event) Terminates() bool {
	return e == EventQuit || e == EventEscape
}
