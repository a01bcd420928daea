package types

// Point is a cell on the board, in grid units.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the board dimensions. CellSize is only used by
// frontends to turn a Point into pixels.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center is the canonical start cell.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the board. Moving past an edge re-enters on the
// opposite edge.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Pixel returns the top-left pixel of p.
func (g Grid) Pixel(p Point) (x, y int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	FoodColor       = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Canvas is anything that can paint a single cell.
type Canvas interface {
	DrawCell(p Point, c Color)
}
