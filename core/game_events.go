package core

// Events describe what happened during a single tick. The engine reports
// them so the console can log them; they never feed back into the state.

type FoodEaten struct {
	Pos Coord // where the head met the food
}

type FoodSpawned struct {
	Pos Coord
}

type SnakeDied struct {
	Pos    Coord // head position that hit the body
	Length int
}

// BoardFull is reported when the snake covers every cell and no food can be
// placed any more.
type BoardFull struct {
	Length int
}

type DirectionChanged struct {
	From, To Direction
}

// Quit is reported when the player presses the quit key.
type Quit struct{}
