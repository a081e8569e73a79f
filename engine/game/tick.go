package game

import "github.com/kuredoro/termsnake/core"

type TickResult struct {
	Eaten  bool
	Events []interface{}
}

// Tick moves the game forward by one step. The head is moved first and then
// checked against the segments that remain, so a collision stops the run on
// the very tick it happens. Eaten food is replaced somewhere off the snake.
// A stopped game is left as is.
func Tick(s *State, sp *Spawner) TickResult {
	var res TickResult
	if !s.Game.Playing {
		return res
	}

	res.Eaten = Step(s)
	if res.Eaten {
		res.Events = append(res.Events, core.FoodEaten{Pos: s.Snake.Head})
	}

	if SelfCollision(s.Snake) {
		s.Game.Playing = false
		res.Events = append(res.Events, core.SnakeDied{Pos: s.Snake.Head, Length: s.Snake.Len()})
		return res
	}

	if !res.Eaten {
		return res
	}

	food, ok := sp.SpawnAvoiding(s.Game.Bounds, s.Occupied)
	if !ok {
		s.Game.Playing = false
		res.Events = append(res.Events, core.BoardFull{Length: s.Snake.Len()})
		return res
	}

	s.Food = food
	res.Events = append(res.Events, core.FoodSpawned{Pos: food})
	return res
}
