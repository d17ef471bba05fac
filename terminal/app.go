package terminal

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gdamore/tcell/v2"
)

// App drives one Handler from a tcell screen on the calling goroutine.
type App struct {
	screen   tcell.Screen
	handler  game.Handler
	renderer *Renderer
	input    *Input
	status   string
}

// NewApp wires a screen to a handler. The screen must already be initialised.
func NewApp(screen tcell.Screen, h game.Handler) *App {
	snap := h.Snapshot()
	r := NewRenderer(screen, snap.Rows, snap.Cols)
	return &App{
		screen:   screen,
		handler:  h,
		renderer: r,
		input:    NewInput(r.Layout()),
	}
}

// Run polls events until the user quits or the screen is finalised.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			a.screen.Sync()
			a.draw()
			continue
		}
		if !a.Step(ev) {
			return
		}
		a.draw()
	}
}

// Step applies one tcell event. It returns false when the user asked to
// quit.
func (a *App) Step(ev tcell.Event) bool {
	e, ok := a.input.Translate(ev)
	if !ok {
		return true
	}
	if e.Kind == game.EventKey && e.Key == game.KeyQuit {
		return false
	}

	err := a.handler.Handle(e)
	switch {
	case err == nil, errors.Is(err, game.ErrUnboundKey):
		a.status = ""
	case errors.Is(err, game.ErrRaceFinished):
		// the finish message stays up
	default:
		a.status = err.Error()
	}
	if a.handler.Done() {
		a.status = fmt.Sprintf("Finished in %d moves! Press q to quit.", a.handler.Snapshot().Moves)
	}
	return true
}

// Status returns the message shown under the board.
func (a *App) Status() string {
	return a.status
}

func (a *App) draw() {
	a.renderer.Draw(a.handler.Snapshot(), a.status)
}
