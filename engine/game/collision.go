package game

import "github.com/kuredoro/termsnake/core"

func FoodCollision(head, food core.Coord) bool {
	return core.EqualCoord(head, food)
}

// SelfCollision reports whether the head overlaps one of the other body
// segments. The last segment is the head itself and is skipped.
func SelfCollision(snake Snake) bool {
	if len(snake.Body) < 2 {
		return false
	}
	for _, segment := range snake.Body[:len(snake.Body)-1] {
		if core.EqualCoord(segment, snake.Head) {
			return true
		}
	}
	return false
}
