package game

import (
	"math/rand"

	"github.com/kuredoro/termsnake/core"
)

// number of random draws tried before falling back to scanning free cells
const maxSpawnAttempts = 64

type Spawner struct {
	r *rand.Rand
}

func NewSpawner(r *rand.Rand) *Spawner {
	return &Spawner{r: r}
}

// Spawn draws a coordinate uniformly from the board.
func (sp *Spawner) Spawn(b core.Bounds) core.Coord {
	return core.Coord{
		X: sp.r.Intn(b.X),
		Y: sp.r.Intn(b.Y),
	}
}

// SpawnAvoiding draws a coordinate for which taken returns false. The second
// result is false when every cell of the board is taken.
func (sp *Spawner) SpawnAvoiding(b core.Bounds, taken func(core.Coord) bool) (core.Coord, bool) {
	for i := 0; i < maxSpawnAttempts; i++ {
		c := sp.Spawn(b)
		if !taken(c) {
			return c, true
		}
	}

	// The board is crowded, pick among the cells that are still free.
	free := make([]core.Coord, 0, b.Area())
	for y := 0; y < b.Y; y++ {
		for x := 0; x < b.X; x++ {
			c := core.Coord{X: x, Y: y}
			if !taken(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Coord{}, false
	}
	return free[sp.r.Intn(len(free))], true
}

func (sp *Spawner) Direction() core.Direction {
	return core.Directions[sp.r.Intn(len(core.Directions))]
}
