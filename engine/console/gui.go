package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kuredoro/termsnake/core"
)

const (
	welcome    = `Welcome to the terminal snake game.`
	navigation = `Steer with W A S D or the arrow keys, Ctrl-C quits`
)

type cover struct {
	root  tview.Primitive
	start *tview.Button
	quit  *tview.Button
}

func newCover(onStart, onQuit func()) *cover {
	c := &cover{}

	// Create a frame for the subtitle and navigation infos.
	frame := tview.NewFrame(tview.NewBox()).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText(welcome, true, tview.AlignCenter, tcell.ColorGreen).
		AddText("", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(navigation, true, tview.AlignCenter, tcell.ColorDarkMagenta)

	c.start = tview.NewButton("Start").SetSelectedFunc(onStart)
	c.quit = tview.NewButton("Quit").SetSelectedFunc(onQuit)

	// Create a Flex layout that centers the logo and subtitle.
	c.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 5, false).
		AddItem(frame, 3, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(c.start, 20, 1, true).
			AddItem(c.quit, 20, 1, false).
			AddItem(tview.NewBox(), 0, 1, false), 1, 1, true).
		AddItem(tview.NewBox(), 0, 5, false)
	return c
}

// ShowCover displays the title screen and reports whether the player chose
// to start. A nil screen makes tview detect the terminal itself. The screen
// is finalized when the cover closes.
func ShowCover(s tcell.Screen) (bool, error) {
	app := tview.NewApplication()
	if s != nil {
		app.SetScreen(s)
	}

	started := false
	c := newCover(func() {
		started = true
		app.Stop()
	}, app.Stop)

	c.start.SetExitFunc(func(tcell.Key) { app.SetFocus(c.quit) })
	c.quit.SetExitFunc(func(tcell.Key) { app.SetFocus(c.start) })

	if err := app.SetRoot(c.root, true).SetFocus(c.start).Run(); err != nil {
		return false, &core.DisplayError{Op: "cover", Err: err}
	}
	return started, nil
}
