package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/termsnake/config"
	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/console"
	"github.com/kuredoro/termsnake/engine/game"
)

func main() {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		printErr("load config:", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg)
	os.Exit(run(cfg, logFile))
}

// run plays one game and returns the exit status. It exists so deferred
// cleanup happens before os.Exit.
func run(cfg config.Config, logFile *os.File) int {
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.Cover {
		start, err := console.ShowCover(nil)
		if err != nil {
			fatal(err)
			return 1
		}
		if !start {
			log.Info().Msg("Quit from the cover")
			return 0
		}
	}

	screen, err := console.NewScreen()
	if err != nil {
		fatal(err)
		return 1
	}

	bounds, err := console.Bounds(screen)
	if err != nil {
		screen.Fini()
		fatal(err)
		return 1
	}

	seed := cfg.SeedOrNow(time.Now())
	sp := game.NewSpawner(rand.New(rand.NewSource(seed)))
	state, err := game.New(bounds, sp)
	if err != nil {
		screen.Fini()
		fatal(fmt.Errorf("new game: %v", err))
		return 1
	}

	log.Info().
		Int("width", bounds.X).
		Int("height", bounds.Y).
		Int64("seed", seed).
		Stringer("direction", state.Snake.Direction).
		Msg("Game started")

	runner := console.NewRunner(screen, state, sp, game.NewTimerScheduler(), cfg.TickInterval,
		console.NewRenderer(screen, cfg.Status))

	outcome, crashed := play(runner, cfg.QuitGrace)
	if crashed {
		return 1
	}

	log.Info().
		Stringer("outcome", outcome).
		Int("length", state.Snake.Len()).
		Msg("Game over")
	return 0
}

type gameRunner interface {
	Run() console.Outcome
	Close()
}

// play runs the game and shuts it down in order: stop reading input, restore
// the terminal, wait grace for the terminal to settle. A crash takes the same
// path before its trace is printed, otherwise the trace is lost in raw mode.
func play(r gameRunner, grace time.Duration) (outcome console.Outcome, crashed bool) {
	defer func() {
		if p := recover(); p != nil {
			crashed = true
			shutdown(r, grace)
			log.Error().Interface("panic", p).Msg("Game crashed")
			printErr("game crashed:", fmt.Errorf("%v\n%s", p, debug.Stack()))
		}
	}()

	outcome = r.Run()
	shutdown(r, grace)
	return outcome, false
}

func shutdown(r gameRunner, grace time.Duration) {
	r.Close()
	time.Sleep(grace)
}

func fatal(err error) {
	log.Err(err).Msg("Startup failed")

	var de *core.DisplayError
	if errors.As(err, &de) {
		printErr("cannot detect terminal:", err)
		return
	}
	printErr("start game:", err)
}

func printErr(m string, args ...interface{}) {
	if len(args) == 0 {
		panic("printErr: no arguments passed")
	}

	err := args[len(args)-1]

	header := m
	if len(args) > 1 {
		header = fmt.Sprintf(m, args[:len(args)-1]...)
	}

	fmt.Fprint(os.Stderr, cfmt.Sprintf("{{error:}}::lightRed|bold %s %v\n", header, err))
}
