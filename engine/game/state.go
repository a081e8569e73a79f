package game

import (
	"fmt"

	"github.com/kuredoro/termsnake/core"
)

type Snake struct {
	Head      core.Coord
	Body      []core.Coord // tail first, head last
	Direction core.Direction
}

func (s Snake) Len() int {
	return len(s.Body)
}

type Game struct {
	Playing bool
	Bounds  core.Bounds
}

// State is everything the game knows about a run. It has a single owner that
// feeds it ticks and input events one at a time.
type State struct {
	Snake Snake
	Food  core.Coord
	Game  Game
}

type Status int

const (
	Running Status = iota
	Stopped
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Stopped:
		return "STOPPED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// New places the snake and the food at random, distinct cells of a board of
// size b and picks a random initial direction.
func New(b core.Bounds, sp *Spawner) (*State, error) {
	if b.X < 1 || b.Y < 1 || b.Area() < 2 {
		return nil, fmt.Errorf("board %dx%d is too small for a snake and its food", b.X, b.Y)
	}

	head := sp.Spawn(b)
	food := sp.Spawn(b)
	for FoodCollision(head, food) {
		food = sp.Spawn(b)
	}

	return &State{
		Snake: Snake{
			Head:      head,
			Body:      []core.Coord{head},
			Direction: sp.Direction(),
		},
		Food: food,
		Game: Game{
			Playing: true,
			Bounds:  b,
		},
	}, nil
}

func (s *State) Status() Status {
	if s.Game.Playing {
		return Running
	}
	return Stopped
}

// Occupied reports whether any body segment lies on c.
func (s *State) Occupied(c core.Coord) bool {
	for _, segment := range s.Snake.Body {
		if core.EqualCoord(segment, c) {
			return true
		}
	}
	return false
}

// Turn applies an input token to the snake's direction. It reports the change
// when one happened.
func (s *State) Turn(token string) (core.DirectionChanged, bool) {
	from := s.Snake.Direction
	to := Resolve(token, from)
	if to == from {
		return core.DirectionChanged{}, false
	}

	s.Snake.Direction = to
	return core.DirectionChanged{From: from, To: to}, true
}
