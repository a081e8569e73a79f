package core

import "fmt"

type Coord struct {
	X, Y int
}

func EqualCoord(a, b Coord) bool {
	return a.X == b.X && a.Y == b.Y
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Bounds holds the exclusive upper limit of each axis of the board.
type Bounds struct {
	X, Y int
}

func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.X && c.Y >= 0 && c.Y < b.Y
}

func (b Bounds) Area() int {
	return b.X * b.Y
}

// Wrap folds an out of range coordinate back onto the board. Each axis is
// handled on its own; a value at or past the bound becomes 0 and a negative
// value becomes bound-1.
func (b Bounds) Wrap(c Coord) Coord {
	if c.X >= b.X {
		c.X = 0
	} else if c.X < 0 {
		c.X = b.X - 1
	}
	if c.Y >= b.Y {
		c.Y = 0
	} else if c.Y < 0 {
		c.Y = b.Y - 1
	}
	return c
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var Directions = [...]Direction{Up, Right, Down, Left}

var directionNames = [...]string{
	Up:    "UP",
	Right: "RIGHT",
	Down:  "DOWN",
	Left:  "LEFT",
}

func (d Direction) String() string {
	if d < Up || d > Left {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

var shiftMap = map[Direction]Coord{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

// Shift moves c one cell towards d without any bounds checking.
func (c Coord) Shift(d Direction) Coord {
	delta := shiftMap[d]
	return Coord{X: c.X + delta.X, Y: c.Y + delta.Y}
}
