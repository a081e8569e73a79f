package game

// Step advances the snake by one cell and reports whether it ate the food on
// the way. Food is not respawned here.
func Step(s *State) bool {
	head := s.Game.Bounds.Wrap(s.Snake.Head.Shift(s.Snake.Direction))
	eaten := FoodCollision(head, s.Food)

	body := s.Snake.Body
	if !eaten {
		body = body[1:]
	}
	s.Snake.Body = append(body, head)
	s.Snake.Head = head

	return eaten
}
