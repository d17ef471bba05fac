// Command console runs the maze editor or the race in a terminal.
package main

import (
	"flag"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	mode := flag.String("mode", "editor", "editor or race")
	fill := flag.String("fill", config.Envs.ConsoleFill, "blank editor grid: empty or wall")
	lattice := flag.String("lattice", config.Envs.Lattice, "generation scheme: half or single")
	seed := flag.Int64("seed", config.Envs.MazeSeed, "generator seed, 0 seeds from the clock")
	flag.Parse()

	tag, err := maze.ParseFill(*fill)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	lat, err := maze.ParseLattice(*lattice)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	h, err := game.Build(game.Options{
		Mode:     *mode,
		Rows:     config.Envs.GridRows,
		Cols:     config.Envs.GridCols,
		RaceRows: config.Envs.RaceHeight,
		RaceCols: config.Envs.RaceWidth,
		Fill:     tag,
		Lattice:  lat,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[APP] [FATAL] Creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[APP] [FATAL] Initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	terminal.NewApp(screen, h).Run()
}
