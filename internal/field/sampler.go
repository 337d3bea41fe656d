package field

import (
	"golang.org/x/sync/errgroup"

	"wavefield/internal/wave"
)

// Coordinate is a sampled grid point. X and Y are grid indices.
type Coordinate struct {
	X int
	Y int
	Z float64
}

// Sample evaluates state over an xLen by yLen grid, x outermost, so the
// point (x, y) lands at index y + x*yLen.
//
// With workers > 1 rows are evaluated concurrently against a snapshot of the
// state's evaluator. Each cell is independent, so the result matches the
// sequential pass exactly.
func Sample(state *wave.State, xLen, yLen, workers int) []Coordinate {
	coords := make([]Coordinate, xLen*yLen)
	if workers <= 1 || xLen < 2 {
		for x := 0; x < xLen; x++ {
			for y := 0; y < yLen; y++ {
				coords[y+x*yLen] = Coordinate{X: x, Y: y, Z: state.Calculate(float64(x), float64(y))}
			}
		}
		return coords
	}

	eval := state.Evaluator()
	var g errgroup.Group
	g.SetLimit(workers)
	for x := 0; x < xLen; x++ {
		g.Go(func() error {
			row := coords[x*yLen : (x+1)*yLen]
			for y := range row {
				row[y] = Coordinate{X: x, Y: y, Z: eval(float64(x), float64(y))}
			}
			return nil
		})
	}
	// Row tasks never fail.
	_ = g.Wait()
	return coords
}
