package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kuredoro/termsnake/engine/game"
)

var key2Token = map[tcell.Key]string{
	tcell.KeyUp:    "UP",
	tcell.KeyDown:  "DOWN",
	tcell.KeyLeft:  "LEFT",
	tcell.KeyRight: "RIGHT",
	tcell.KeyCtrlC: game.QuitToken,
}

// Token turns a key press into the token understood by the game. Keys with
// no meaning produce an empty token.
func Token(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	return key2Token[ev.Key()]
}
