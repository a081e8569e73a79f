package game_test

import (
	"math/rand"
	"testing"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/game"
)

func newSpawner(seed int64) *game.Spawner {
	return game.NewSpawner(rand.New(rand.NewSource(seed)))
}

// newState builds a running game whose head is the last element of body.
func newState(b core.Bounds, dir core.Direction, food core.Coord, body ...core.Coord) *game.State {
	return &game.State{
		Snake: game.Snake{
			Head:      body[len(body)-1],
			Body:      append([]core.Coord(nil), body...),
			Direction: dir,
		},
		Food: food,
		Game: game.Game{Playing: true, Bounds: b},
	}
}

func AssertBody(t *testing.T, got, want []core.Coord) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got body %v (%d segments), want %v (%d segments)", got, len(got), want, len(want))
	}
	for i := range got {
		if !core.EqualCoord(got[i], want[i]) {
			t.Errorf("segment #%d is %v, want %v (body %v)", i, got[i], want[i], got)
		}
	}
}
