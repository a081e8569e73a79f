package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/game"
)

// Outcome tells why a run ended.
type Outcome int

const (
	Quit Outcome = iota
	Died
	BoardFilled
)

func (o Outcome) String() string {
	switch o {
	case Quit:
		return "quit"
	case Died:
		return "died"
	case BoardFilled:
		return "board filled"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Runner owns the game state for the whole run. Ticks and key presses are
// both handled on the goroutine that calls Run, so the state is never touched
// concurrently.
type Runner struct {
	screen   tcell.Screen
	state    *game.State
	spawner  *game.Spawner
	sched    game.Scheduler
	interval time.Duration
	renderer *Renderer

	events    chan tcell.Event
	quit      chan struct{}
	closeOnce sync.Once
}

func NewRunner(s tcell.Screen, state *game.State, sp *game.Spawner, sched game.Scheduler,
	interval time.Duration, renderer *Renderer) *Runner {
	return &Runner{
		screen:   s,
		state:    state,
		spawner:  sp,
		sched:    sched,
		interval: interval,
		renderer: renderer,
		events:   make(chan tcell.Event),
		quit:     make(chan struct{}),
	}
}

// Run plays until the quit key is pressed or the game stops by itself.
func (r *Runner) Run() Outcome {
	go r.screen.ChannelEvents(r.events, r.quit)

	r.renderer.Draw(r.state)
	r.sched.Arm(r.interval)

	for {
		select {
		case <-r.sched.C():
			res := game.Tick(r.state, r.spawner)
			logEvents(res.Events)
			r.renderer.Draw(r.state)

			if !r.state.Game.Playing {
				return outcomeOf(res.Events)
			}

			// The next tick is measured from the end of this one.
			r.sched.Arm(r.interval)
		case ev, ok := <-r.events:
			if !ok {
				log.Warn().Msg("Input closed")
				return Quit
			}
			if r.handleEvent(ev) {
				logEvents([]interface{}{core.Quit{}})
				return Quit
			}
		}
	}
}

// handleEvent applies a single input event and reports whether it asked to
// quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		token := Token(ev)
		if game.IsQuit(token) {
			return true
		}

		if change, ok := r.state.Turn(token); ok {
			log.Debug().
				Stringer("from", change.From).
				Stringer("to", change.To).
				Msg("Direction changed")
		}
	}
	return false
}

// Close stops reading input and restores the terminal, in that order. It may
// be called more than once.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.sched.Stop()
		close(r.quit)
		r.screen.Fini()
	})
}

// outcomeOf picks the reason a game stopped from the events of its last tick.
func outcomeOf(events []interface{}) Outcome {
	for _, ev := range events {
		switch ev.(type) {
		case core.BoardFull:
			return BoardFilled
		case core.SnakeDied:
			return Died
		}
	}
	return Quit
}

func logEvents(events []interface{}) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case core.FoodEaten:
			log.Info().Msgf("Food on (%d, %d) eaten", ev.Pos.X, ev.Pos.Y)
		case core.FoodSpawned:
			log.Info().Msgf("New food created on (%d, %d)", ev.Pos.X, ev.Pos.Y)
		case core.SnakeDied:
			log.Info().
				Int("x", ev.Pos.X).
				Int("y", ev.Pos.Y).
				Int("length", ev.Length).
				Msg("Snake ran into itself")
		case core.BoardFull:
			log.Info().Int("length", ev.Length).Msg("No room left for food")
		case core.Quit:
			log.Info().Msg("Quit requested")
		default:
			log.Warn().Msgf("Unknown game event %T", ev)
		}
	}
}
