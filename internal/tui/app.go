package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/layout"
	"github.com/katalvlaran/pathlab/pathfinder"
	"github.com/katalvlaran/pathlab/search"
)

// DefaultDensity is the wall fraction used by the random layout key.
const DefaultDensity = 0.3

var (
	errQuit = errors.New("tui: quit requested")
	errStop = errors.New("tui: search stopped")
)

// Option configures an App.
type Option func(*App)

// WithStepDelay sets the pause after each drawn snapshot. Negative values
// are treated as zero.
func WithStepDelay(d time.Duration) Option {
	return func(a *App) {
		if d < 0 {
			d = 0
		}
		a.delay = d
	}
}

// WithCue sets the completion signal. nil keeps the silent default.
func WithCue(c Cue) Option {
	return func(a *App) {
		if c != nil {
			a.cue = c
		}
	}
}

// WithLogger routes UI logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithSeed makes random layouts reproducible.
func WithSeed(seed int64) Option {
	return func(a *App) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// App draws a session on a screen and turns input into session calls.
// It is single-threaded: searches run on the event loop goroutine and
// read input between snapshots.
type App struct {
	screen  tcell.Screen
	session *pathfinder.Session
	delay   time.Duration
	cue     Cue
	log     logrus.FieldLogger
	rng     *rand.Rand

	events chan tcell.Event
	held   tcell.ButtonMask
	snap   *search.Snapshot
	status string
}

// New returns an App for an initialized screen. The caller owns the
// screen and calls Fini after Run returns.
func New(screen tcell.Screen, session *pathfinder.Session, opts ...Option) *App {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	a := &App{
		screen:  screen,
		session: session,
		cue:     silent{},
		log:     discard,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		events:  make(chan tcell.Event, 64),
		status:  "left click: start, target, walls",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run processes input until a quit key, ctx cancellation, or screen
// shutdown. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	go a.pump(done)

	for {
		a.draw()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-a.events:
			if !ok {
				return nil
			}
			if !a.handle(ctx, ev) {
				return nil
			}
		}
	}
}

// pump forwards screen events until the screen is finalized or done closes.
func (a *App) pump(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(a.events)
			return
		}
		select {
		case a.events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies one idle-time event and reports whether to keep running.
func (a *App) handle(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
			return true
		}
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return false
		case 'c', 'C':
			a.clear()
		case 'r', 'R':
			a.randomize()
		default:
			alg, err := pathfinder.ParseAlgorithm(string(r))
			if err == nil {
				return a.run(ctx, alg)
			}
		}

	case *tcell.EventMouse:
		a.mouse(ev)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// mouse maps a mouse event to a board cell and applies it. A fresh left
// press uses the full placement rule; a held button only paints walls
// once start and target exist.
func (a *App) mouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ a.held
	a.held = buttons

	x, y := ev.Position()
	row, col := y-boardTop, x/cellWidth
	if !a.session.Grid().InBounds(row, col) {
		return
	}

	var err error
	switch {
	case buttons&tcell.Button1 != 0:
		if pressed&tcell.Button1 != 0 || a.session.Ready() {
			_, err = a.session.Click(row, col)
		}
	case buttons&tcell.Button2 != 0:
		err = a.session.Erase(row, col)
	}
	if err != nil {
		a.status = err.Error()
	}
}

func (a *App) clear() {
	if err := a.session.Clear(); err != nil {
		a.status = err.Error()
		return
	}
	a.status = "board cleared"
}

func (a *App) randomize() {
	err := a.session.ApplyLayout(
		[]layout.Option{layout.WithRand(a.rng)},
		layout.Clear(), layout.Random(DefaultDensity),
	)
	if err != nil {
		a.log.WithError(err).Warn("random layout failed")
		a.status = err.Error()
		return
	}
	a.status = fmt.Sprintf("random walls: %d", len(a.session.Grid().Walls()))
}

// run executes alg with live drawing and reports whether to keep running.
func (a *App) run(ctx context.Context, alg pathfinder.Algorithm) bool {
	if !a.session.Ready() {
		a.status = "place start and target first"
		return true
	}

	a.status = alg.Title() + "..."
	rep, err := a.session.Run(ctx, alg, a.observe)
	a.snap = nil
	switch {
	case errors.Is(err, errQuit):
		a.log.WithField("algorithm", alg.String()).Info("quit during search")
		return false
	case errors.Is(err, errStop):
		a.log.WithField("algorithm", alg.String()).Info("search stopped by user")
		a.status = alg.Title() + ": stopped"
		return true
	case err != nil:
		a.status = err.Error()
		return true
	}

	a.status = summary(rep)
	if rep.Result.Found() {
		a.cue.Found()
	} else {
		a.cue.NotFound()
	}
	return true
}

// observe draws one snapshot, then waits out the step delay while
// watching for stop and quit keys.
func (a *App) observe(s search.Snapshot) error {
	a.snap = &s
	a.draw()

	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return nil
		case ev, ok := <-a.events:
			if !ok {
				return errQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return errQuit
				case ev.Key() == tcell.KeyEscape:
					return errStop
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}
}

// summary renders a finished run for the status line.
func summary(rep pathfinder.Report) string {
	res := rep.Result
	head := fmt.Sprintf("%s: ", rep.Algorithm.Title())
	switch {
	case res.Found():
		return head + fmt.Sprintf("%d moves, %d expanded, shortest %d, %s",
			res.Edges(), res.Expanded, rep.Shortest, rep.Elapsed.Round(time.Microsecond))
	case rep.Breach > 0:
		return head + fmt.Sprintf("no path, %d expanded; remove %d wall(s) to connect",
			res.Expanded, rep.Breach)
	default:
		return head + fmt.Sprintf("no path within the depth limit, %d expanded; shortest is %d",
			res.Expanded, rep.Shortest)
	}
}
