// Package game runs maze sessions on a terminal screen: one maze per game,
// repeated until the player declines another, with timing kept throughout.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"terminal-maze/internal/maze"
	"terminal-maze/internal/render"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Options configures a session.
type Options struct {
	Rows, Columns int
	Seed          int64 // 0 seeds from the clock
	History       bool  // append each game to runs.jsonl
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	seed     int64
	rng      *rand.Rand
	logger   *slog.Logger
	watch    *Stopwatch
	now      func() time.Time
}

// New creates a Game with its screen initialized. The screen is released
// when Run returns.
func New(opts Options, logger *slog.Logger) (*Game, error) {
	if opts.Rows < 1 || opts.Columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimension, opts.Rows, opts.Columns)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newWithScreen(screen, opts, logger, time.Now), nil
}

// newWithScreen builds a Game around an already initialized screen.
func newWithScreen(screen tcell.Screen, opts Options, logger *slog.Logger, now func() time.Time) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		opts:     opts,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
		watch:    NewStopwatch(now),
		now:      now,
	}
}

// Run plays games until the player quits or declines another one, then
// releases the screen and returns the session's timing summary.
func (g *Game) Run() (Summary, error) {
	defer g.screen.Fini()

	g.logger.Info("session started", "rows", g.opts.Rows, "columns", g.opts.Columns, "seed", g.seed)
	for {
		escaped, err := g.play()
		if err != nil {
			return g.watch.Summary(), err
		}
		if !escaped || !g.askNewGame() {
			sum := g.watch.Summary()
			g.logger.Info("session ended", "games", sum.Games, "average", sum.Average)
			return sum, nil
		}
	}
}

// play runs one maze to completion. It reports false when the player quit
// before reaching the exit.
func (g *Game) play() (bool, error) {
	m, err := maze.New(g.opts.Rows, g.opts.Columns, g.rng)
	if err != nil {
		return false, fmt.Errorf("create maze: %w", err)
	}
	rl := newRunLog(g.now(), g.opts.Rows, g.opts.Columns, g.seed)
	g.logger.Debug("maze generated", "id", rl.ID, "rows", m.Rows(), "columns", m.Columns())

	g.watch.Start()
	for !m.Escaped() {
		g.renderer.DrawFrame(m, render.StatusLine(rl.Steps, g.watch.Elapsed()))

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			// Screen finalized underneath us.
			g.finish(&rl, g.watch.Discard())
			return false, nil
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			rl.Keypresses++
			if isQuit(ev) {
				g.finish(&rl, g.watch.Discard())
				return false, nil
			}
			if m.Move(keyToDirection(ev)) {
				rl.Steps++
			}
		}
	}

	rl.Escaped = true
	lap := g.watch.Lap()
	g.finish(&rl, lap)
	g.renderer.DrawFrame(m, render.StatusLine(rl.Steps, lap))
	return true, nil
}

// finish stamps the game's duration, logs it and appends it to the history.
func (g *Game) finish(rl *RunLog, d time.Duration) {
	rl.DurationMS = d.Milliseconds()
	g.logger.Info("game finished", "id", rl.ID, "escaped", rl.Escaped,
		"duration", d, "steps", rl.Steps, "keypresses", rl.Keypresses)
	if g.opts.History {
		saveRunLog(*rl, g.logger)
	}
}

// askNewGame congratulates the player and blocks until they answer the
// "play again" prompt. Unrecognized keys re-ask; quit keys mean no.
func (g *Game) askNewGame() bool {
	laps := g.watch.Laps()
	congrats := fmt.Sprintf("Congratulations! You escaped the maze in %s.", formatDuration(laps[len(laps)-1]))
	for {
		g.renderer.DrawMessages(congrats, "", "Do you want to play another game [Y/n]?")

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if isQuit(ev) {
				return false
			}
			switch keyToAnswer(ev) {
			case AnswerYes:
				return true
			case AnswerNo:
				return false
			}
		}
	}
}
