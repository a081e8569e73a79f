package game_test

import (
	"testing"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/game"
)

func TestStepWrapAround(t *testing.T) {
	b := core.Bounds{X: 4, Y: 3}
	food := core.Coord{X: 1, Y: 1}

	cases := []struct {
		name string
		head core.Coord
		dir  core.Direction
		want core.Coord
	}{
		{"right edge to column 0", core.Coord{X: 3, Y: 0}, core.Right, core.Coord{X: 0, Y: 0}},
		{"left edge to last column", core.Coord{X: 0, Y: 2}, core.Left, core.Coord{X: 3, Y: 2}},
		{"bottom edge to row 0", core.Coord{X: 2, Y: 2}, core.Down, core.Coord{X: 2, Y: 0}},
		{"top edge to last row", core.Coord{X: 2, Y: 0}, core.Up, core.Coord{X: 2, Y: 2}},
		{"no wrap inside", core.Coord{X: 2, Y: 1}, core.Right, core.Coord{X: 3, Y: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newState(b, c.dir, food, c.head)

			if game.Step(s) {
				t.Fatal("nothing to eat, yet the snake ate")
			}
			if s.Snake.Head != c.want {
				t.Errorf("head moved to %v, want %v", s.Snake.Head, c.want)
			}
			AssertBody(t, s.Snake.Body, []core.Coord{c.want})
		})
	}
}

func TestStepGrowth(t *testing.T) {
	t.Run("eating keeps every segment", func(t *testing.T) {
		body := []core.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
		s := newState(core.Bounds{X: 6, Y: 6}, core.Down, core.Coord{X: 2, Y: 2}, body...)

		if !game.Step(s) {
			t.Fatal("food lay ahead of the head but was not eaten")
		}

		AssertBody(t, s.Snake.Body, append(body, core.Coord{X: 2, Y: 2}))
	})

	t.Run("moving drops the oldest segment", func(t *testing.T) {
		body := []core.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
		s := newState(core.Bounds{X: 6, Y: 6}, core.Down, core.Coord{X: 5, Y: 5}, body...)

		if game.Step(s) {
			t.Fatal("food was not ahead, yet the snake ate")
		}

		AssertBody(t, s.Snake.Body, []core.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}})
	})

	t.Run("scenario growth", func(t *testing.T) {
		s := newState(core.Bounds{X: 5, Y: 5}, core.Right, core.Coord{X: 3, Y: 2}, core.Coord{X: 2, Y: 2})

		if !game.Step(s) {
			t.Fatal("want the food at (3, 2) eaten")
		}
		if want := (core.Coord{X: 3, Y: 2}); s.Snake.Head != want {
			t.Errorf("head is %v, want %v", s.Snake.Head, want)
		}
		AssertBody(t, s.Snake.Body, []core.Coord{{X: 2, Y: 2}, {X: 3, Y: 2}})
	})

	t.Run("scenario wrap without growth", func(t *testing.T) {
		s := newState(core.Bounds{X: 3, Y: 3}, core.Right, core.Coord{X: 0, Y: 0},
			core.Coord{X: 1, Y: 1}, core.Coord{X: 2, Y: 1})

		if game.Step(s) {
			t.Fatal("food at (0, 0) must not be eaten")
		}
		if want := (core.Coord{X: 0, Y: 1}); s.Snake.Head != want {
			t.Errorf("head is %v, want %v", s.Snake.Head, want)
		}
		AssertBody(t, s.Snake.Body, []core.Coord{{X: 2, Y: 1}, {X: 0, Y: 1}})
	})
}

func TestStepNeverShrinks(t *testing.T) {
	sp := newSpawner(7)
	s, err := game.New(core.Bounds{X: 8, Y: 6}, sp)
	if err != nil {
		t.Fatal(err)
	}

	prev := s.Snake.Len()
	for i := 0; i < 500 && s.Game.Playing; i++ {
		s.Turn([]string{"w", "a", "s", "d"}[i%4])
		game.Tick(s, sp)

		if s.Snake.Len() < prev {
			t.Fatalf("tick %d: body shrank from %d to %d", i, prev, s.Snake.Len())
		}
		if s.Snake.Head != s.Snake.Body[s.Snake.Len()-1] {
			t.Fatalf("tick %d: head %v is not the last segment of %v", i, s.Snake.Head, s.Snake.Body)
		}
		for _, seg := range s.Snake.Body {
			if !s.Game.Bounds.Contains(seg) {
				t.Fatalf("tick %d: segment %v left the board", i, seg)
			}
		}
		prev = s.Snake.Len()
	}
}
