package maze

import "fmt"

// Parse builds a grid from rows of the String() alphabet: '#' wall, 'S'
// start, 'E' exit, anything else empty. Overlays are not restored. The
// grid resets to Empty.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}

	g, err := New(len(lines), len(lines[0]), Empty)
	if err != nil {
		return nil, err
	}

	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			var t Tag
			switch line[c] {
			case '#':
				t = Wall
			case 'S':
				t = Start
			case 'E':
				t = Exit
			default:
				t = Empty
			}
			g.cells[r*g.cols+c].Tag = t
		}
	}
	return g, nil
}
