package console_test

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/console"
	"github.com/kuredoro/termsnake/engine/game"
)

func TestRendererDraw(t *testing.T) {
	state := &game.State{
		Snake: game.Snake{
			Head:      core.Coord{X: 2, Y: 1},
			Body:      []core.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
			Direction: core.Right,
		},
		Food: core.Coord{X: 4, Y: 0},
		Game: game.Game{Playing: true, Bounds: core.Bounds{X: 5, Y: 3}},
	}

	t.Run("board only", func(t *testing.T) {
		s := NewSimulationScreen(t, 5, 4)
		defer s.Fini()

		console.NewRenderer(s, false).Draw(state)

		AssertSimulationScreen(t, s, []string{
			"    #",
			"██◆  ",
			"     ",
			"     ",
		})
	})

	t.Run("status row", func(t *testing.T) {
		s := NewSimulationScreen(t, 60, 4)
		defer s.Fini()

		console.NewRenderer(s, true).Draw(state)

		status := rowText(s, 3)
		if !strings.Contains(status, "RUNNING") {
			t.Errorf("status row %q does not show the game status", status)
		}
		for y := 0; y < 3; y++ {
			if strings.Contains(rowText(s, y), "RUNNING") {
				t.Errorf("status leaked onto board row %d", y)
			}
		}
	})

	t.Run("status row is cut to the screen width", func(t *testing.T) {
		s := NewSimulationScreen(t, 8, 4)
		defer s.Fini()

		console.NewRenderer(s, true).Draw(state)

		status := strings.TrimRight(rowText(s, 3), " ")
		if runewidth.StringWidth(status) > 8 {
			t.Errorf("status row %q is wider than the screen", status)
		}
		if !strings.HasSuffix(status, "…") {
			t.Errorf("status row %q is not marked as truncated", status)
		}
		if rowText(s, 0) != "    #   " {
			t.Errorf("board row 0 is %q, want the food only", rowText(s, 0))
		}
	})
}
