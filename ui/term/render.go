// Package term plays the game in a terminal through termbox. Each board
// cell is two terminal columns wide so the board keeps its aspect ratio.
package term

import (
	"fmt"

	"gridsnake/game/types"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	left         = 1
	top          = 2
	cellWidth    = 2
)

var palette = map[types.Color]termbox.Attribute{
	types.BackgroundColor: termbox.ColorBlack,
	types.BorderColor:     termbox.ColorCyan,
	types.FoodColor:       termbox.ColorRed,
	types.SnakeColor:      termbox.ColorGreen,
}

// Init takes over the terminal. Callers must Close it.
func Init() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "termbox init")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return nil
}

func Close() {
	termbox.Close()
}

// Renderer draws the board inside a box with a title line above it.
type Renderer struct {
	grid  types.Grid
	title string
}

func NewRenderer(grid types.Grid, title string) *Renderer {
	return &Renderer{grid: grid, title: title}
}

func (r *Renderer) Clear(c types.Color) {
	termbox.Clear(defaultColor, defaultColor)
	fill(left, top, r.grid.Width*cellWidth, r.grid.Height, termbox.Cell{Ch: ' ', Bg: attribute(c)})
	r.renderBoard()
	tbprint(left-1, top-2, defaultColor, defaultColor,
		fmt.Sprintf("%s - %dx%d - q to quit", r.title, r.grid.Width, r.grid.Height))
}

func (r *Renderer) DrawCell(p types.Point, c types.Color) {
	if !r.grid.Contains(p) {
		return
	}
	col := attribute(c)
	x := left + p.X*cellWidth
	y := top + p.Y
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, y, ' ', col, col)
	}
}

func (r *Renderer) Present() error {
	return errors.Wrap(termbox.Flush(), "termbox flush")
}

func (r *Renderer) renderBoard() {
	right := left + r.grid.Width*cellWidth
	bottom := top + r.grid.Height
	border := attribute(types.BorderColor)

	for y := top; y < bottom; y++ {
		termbox.SetCell(left-1, y, '│', border, defaultColor)
		termbox.SetCell(right, y, '│', border, defaultColor)
	}
	termbox.SetCell(left-1, top-1, '┌', border, defaultColor)
	termbox.SetCell(right, top-1, '┐', border, defaultColor)
	termbox.SetCell(left-1, bottom, '└', border, defaultColor)
	termbox.SetCell(right, bottom, '┘', border, defaultColor)
	fill(left, top-1, r.grid.Width*cellWidth, 1, termbox.Cell{Ch: '─', Fg: border})
	fill(left, bottom, r.grid.Width*cellWidth, 1, termbox.Cell{Ch: '─', Fg: border})
}

func attribute(c types.Color) termbox.Attribute {
	if a, ok := palette[c]; ok {
		return a
	}
	return defaultColor
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
