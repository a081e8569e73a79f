package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kuredoro/termsnake/core"
)

// NewScreen detects the terminal and takes it over.
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &core.DisplayError{Op: "detect", Err: err}
	}
	if err := s.Init(); err != nil {
		return nil, &core.DisplayError{Op: "init", Err: err}
	}

	s.DisableMouse()
	s.HideCursor()
	s.Clear()
	return s, nil
}

// Bounds returns the size of the board that fits on s. The bottom row is kept
// for the status line.
func Bounds(s tcell.Screen) (core.Bounds, error) {
	w, h := s.Size()
	if w < 1 || h < 2 {
		return core.Bounds{}, &core.DisplayError{
			Op:  "size",
			Err: fmt.Errorf("terminal of %dx%d cells is too small", w, h),
		}
	}
	return core.Bounds{X: w, Y: h - 1}, nil
}
