package terminal

import (
	"unicode"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gdamore/tcell/v2"
)

var runeKeys = map[rune]game.Key{
	'r': game.KeyReset,
	'g': game.KeyGenerate,
	's': game.KeySolve,
	'1': game.KeyAStar,
	'2': game.KeyBFS,
	'3': game.KeyDFS,
	'q': game.KeyQuit,
}

var specialKeys = map[tcell.Key]game.Key{
	tcell.KeyUp:     game.KeyUp,
	tcell.KeyDown:   game.KeyDown,
	tcell.KeyLeft:   game.KeyLeft,
	tcell.KeyRight:  game.KeyRight,
	tcell.KeyEscape: game.KeyQuit,
	tcell.KeyCtrlC:  game.KeyQuit,
}

// tcell reports Button1 as left, Button2 as right and Button3 as middle.
var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button game.Button
}{
	{tcell.Button1, game.ButtonPrimary},
	{tcell.Button2, game.ButtonSecondary},
	{tcell.Button3, game.ButtonTertiary},
}

// Input turns tcell events into game events.
type Input struct {
	layout  game.Layout
	pressed tcell.ButtonMask // pressed holds the buttons down at the last mouse event.
}

// NewInput returns an input source mapping screen cells through layout.
func NewInput(layout game.Layout) *Input {
	return &Input{layout: layout}
}

// Translate converts ev. ok is false for events that carry no game input,
// including clicks outside the board and button releases.
func (in *Input) Translate(ev tcell.Event) (e game.Event, ok bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		return in.translateMouse(ev)
	}
	return game.Event{}, false
}

func translateKey(ev *tcell.EventKey) (game.Event, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return game.Press(k), ok
	}
	k, ok := specialKeys[ev.Key()]
	return game.Press(k), ok
}

// translateMouse reports a click only on the transition from released to
// pressed, since tcell repeats the button state on every motion event.
func (in *Input) translateMouse(ev *tcell.EventMouse) (game.Event, bool) {
	buttons := ev.Buttons()
	fresh := buttons &^ in.pressed
	in.pressed = buttons

	for _, mb := range mouseButtons {
		if fresh&mb.mask == 0 {
			continue
		}
		x, y := ev.Position()
		pos, ok := in.layout.Locate(x, y)
		if !ok {
			return game.Event{}, false
		}
		return game.Click(pos, mb.button), true
	}
	return game.Event{}, false
}
