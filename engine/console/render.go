package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/sanity-io/litter"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/game"
)

var (
	defStyle    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	snakeStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorLightCyan)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

var dumpOptions = litter.Options{
	Compact:           true,
	StripPackageNames: true,
}

// Renderer draws a snapshot of the game. It only draws; scheduling the next
// frame is up to the caller.
type Renderer struct {
	screen tcell.Screen
	status bool
}

func NewRenderer(s tcell.Screen, status bool) *Renderer {
	s.SetStyle(defStyle)
	return &Renderer{screen: s, status: status}
}

func (r *Renderer) Draw(state *game.State) {
	r.screen.Clear()

	drawFood(r.screen, state.Food)
	drawSnake(r.screen, state.Snake)

	if r.status {
		w, _ := r.screen.Size()
		y := state.Game.Bounds.Y
		drawText(r.screen, 0, y, w, y, statusStyle, statusLine(state, w))
	}

	r.screen.Show()
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	for _, r := range []rune(text) {
		s.SetContent(col, row, r, nil, style)
		col++
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

func drawSnake(s tcell.Screen, snake game.Snake) {
	for _, point := range snake.Body[:len(snake.Body)-1] {
		s.SetContent(point.X, point.Y, tcell.RuneBlock, nil, snakeStyle)
	}
	s.SetContent(snake.Head.X, snake.Head.Y, tcell.RuneDiamond, nil, snakeStyle)
}

func drawFood(s tcell.Screen, food core.Coord) {
	s.SetContent(food.X, food.Y, '#', nil, foodStyle)
}

type statusView struct {
	Status    string
	Head      core.Coord
	Direction string
	Length    int
	Food      core.Coord
}

// statusLine dumps the interesting part of the state on one line that fits in
// width cells.
func statusLine(state *game.State, width int) string {
	dump := dumpOptions.Sdump(statusView{
		Status:    state.Status().String(),
		Head:      state.Snake.Head,
		Direction: state.Snake.Direction.String(),
		Length:    state.Snake.Len(),
		Food:      state.Food,
	})
	return runewidth.Truncate(dump, width, "…")
}
