package game

import (
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Options configures a single local handler for the console and window
// front-ends.
type Options struct {
	Mode     string // Mode is "editor" or "race".
	Rows     int
	Cols     int
	RaceRows int
	RaceCols int
	Fill     maze.Tag
	Lattice  maze.Lattice
	Seed     int64 // Seed of the generator; 0 seeds from the clock.
}

// Build returns the handler selected by o.Mode.
func Build(o Options) (Handler, error) {
	var rng *rand.Rand
	if o.Seed != 0 {
		rng = rand.New(rand.NewSource(o.Seed))
	}
	gen, err := maze.NewGenerator(o.Lattice, rng)
	if err != nil {
		return nil, err
	}

	switch o.Mode {
	case "editor", "":
		return NewSession(SessionConfig{Rows: o.Rows, Cols: o.Cols, Fill: o.Fill, Generator: gen})
	case "race":
		return NewRace(RaceConfig{Rows: o.RaceRows, Cols: o.RaceCols, Generator: gen})
	}
	return nil, fmt.Errorf("unknown mode %q", o.Mode)
}
