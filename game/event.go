package game

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// EventKind discriminates Event.
type EventKind uint8

const (
	EventNone  EventKind = iota
	EventClick           // EventClick carries Pos and Button.
	EventKey             // EventKey carries Key.
)

// Button is the semantic mouse button of a click.
type Button uint8

const (
	ButtonNone      Button = iota
	ButtonPrimary          // ButtonPrimary places a wall.
	ButtonSecondary        // ButtonSecondary clears a cell.
	ButtonTertiary         // ButtonTertiary places the start, then the exit.
)

// String returns the API name of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	}
	return "none"
}

// ParseButton accepts primary/left, secondary/right and tertiary/middle.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "left":
		return ButtonPrimary, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	case "tertiary", "middle":
		return ButtonTertiary, nil
	}
	return ButtonNone, fmt.Errorf("%w: button %q", ErrUnknownEvent, s)
}

// Key is a symbolic key identifier.
type Key uint8

const (
	KeyNone     Key = iota
	KeyReset        // R
	KeyGenerate     // G
	KeySolve        // S
	KeyAStar        // 1
	KeyBFS          // 2
	KeyDFS          // 3
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

var keyNames = map[Key]string{
	KeyReset:    "r",
	KeyGenerate: "g",
	KeySolve:    "s",
	KeyAStar:    "1",
	KeyBFS:      "2",
	KeyDFS:      "3",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyQuit:     "quit",
}

// String returns the API name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey maps an API key name (case-insensitive) to a Key.
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: key %q", ErrUnknownEvent, s)
}

// Event is one discrete input from an InputSource.
type Event struct {
	Kind   EventKind
	Pos    maze.Position
	Button Button
	Key    Key
}

// Click returns a cell-click event.
func Click(pos maze.Position, b Button) Event {
	return Event{Kind: EventClick, Pos: pos, Button: b}
}

// Press returns a key-press event.
func Press(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

func (e Event) String() string {
	switch e.Kind {
	case EventClick:
		return fmt.Sprintf("click %s at %s", e.Button, e.Pos)
	case EventKey:
		return fmt.Sprintf("key %s", e.Key)
	}
	return "none"
}
