package gui

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TargetFPS is the frame rate of the window loop.
const TargetFPS = 60

// Run opens a window sized for h and drives it until the window is closed or
// Q is pressed. It must be called from the main goroutine.
func Run(title string, cellSize int, h game.Handler) {
	snap := h.Snapshot()
	renderer := NewRenderer(cellSize, snap.Rows, snap.Cols)
	input := NewInput(renderer.Layout())

	width, height := renderer.WindowSize()
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(TargetFPS)

	status := ""
	for !rl.WindowShouldClose() {
		for _, ev := range input.Poll() {
			if ev.Kind == game.EventKey && ev.Key == game.KeyQuit {
				return
			}
			status = apply(h, ev, status)
		}
		renderer.Draw(h.Snapshot(), status)
	}
}

func apply(h game.Handler, ev game.Event, status string) string {
	err := h.Handle(ev)
	switch {
	case h.Done():
		return fmt.Sprintf("Finished in %d moves! Press Q to quit.", h.Snapshot().Moves)
	case err == nil, errors.Is(err, game.ErrUnboundKey):
		return ""
	case errors.Is(err, game.ErrRaceFinished):
		return status
	}
	return err.Error()
}
