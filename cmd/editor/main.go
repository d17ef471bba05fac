// Command editor runs the maze editor or the race in a raylib window.
package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/gui"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// raylib must run on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	mode := flag.String("mode", "editor", "editor or race")
	fill := flag.String("fill", config.Envs.InitialFill, "blank editor grid: empty or wall")
	lattice := flag.String("lattice", config.Envs.Lattice, "generation scheme: half or single")
	seed := flag.Int64("seed", config.Envs.MazeSeed, "generator seed, 0 seeds from the clock")
	cellSize := flag.Int("cell", config.Envs.CellSize, "cell size in pixels")
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

	title := "Maze Solver"
	if *mode == "race" {
		title = "Maze Race"
	}
	gui.Run(title, *cellSize, h)
}
