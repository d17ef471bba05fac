package gui

import (
	"github.com/beka-birhanu/vinom-maze/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key  int32
	game game.Key
}{
	{rl.KeyR, game.KeyReset},
	{rl.KeyG, game.KeyGenerate},
	{rl.KeyS, game.KeySolve},
	{rl.KeyOne, game.KeyAStar},
	{rl.KeyTwo, game.KeyBFS},
	{rl.KeyThree, game.KeyDFS},
	{rl.KeyUp, game.KeyUp},
	{rl.KeyDown, game.KeyDown},
	{rl.KeyLeft, game.KeyLeft},
	{rl.KeyRight, game.KeyRight},
	{rl.KeyQ, game.KeyQuit},
}

// Input polls raylib once per frame.
type Input struct {
	layout game.Layout
}

// NewInput returns an input source mapping window pixels through layout.
func NewInput(layout game.Layout) *Input {
	return &Input{layout: layout}
}

// Poll returns the events of the current frame: button presses first, then
// key presses. Clicks outside the board are dropped.
func (in *Input) Poll() []game.Event {
	var events []game.Event

	if b, ok := pressedButton(); ok {
		x, y := int(rl.GetMouseX()), int(rl.GetMouseY())
		if pos, ok := in.layout.Locate(x, y); ok {
			events = append(events, game.Click(pos, b))
		}
	}

	for _, kb := range keyBindings {
		if rl.IsKeyPressed(kb.key) {
			events = append(events, game.Press(kb.game))
		}
	}
	return events
}

// pressedButton reports the first mouse button pressed this frame.
func pressedButton() (game.Button, bool) {
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		return game.ButtonPrimary, true
	case rl.IsMouseButtonPressed(rl.MouseButtonRight):
		return game.ButtonSecondary, true
	case rl.IsMouseButtonPressed(rl.MouseButtonMiddle):
		return game.ButtonTertiary, true
	}
	return game.ButtonNone, false
}
