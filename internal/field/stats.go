package field

import "math"

// Stats summarizes a sampled grid.
type Stats struct {
	Coords    int
	Triangles int
	MinZ      float64
	MaxZ      float64
	MeanZ     float64
	// NonFinite counts NaN and infinite heights, which are excluded from the
	// other aggregates.
	NonFinite int
}

// Summarize computes Stats over coords.
func Summarize(coords []Coordinate, triangles int) Stats {
	st := Stats{Coords: len(coords), Triangles: triangles, MinZ: math.Inf(1), MaxZ: math.Inf(-1)}
	var sum float64
	finite := 0
	for _, c := range coords {
		if math.IsNaN(c.Z) || math.IsInf(c.Z, 0) {
			st.NonFinite++
			continue
		}
		finite++
		sum += c.Z
		st.MinZ = math.Min(st.MinZ, c.Z)
		st.MaxZ = math.Max(st.MaxZ, c.Z)
	}
	if finite == 0 {
		st.MinZ, st.MaxZ = math.NaN(), math.NaN()
		st.MeanZ = math.NaN()
		return st
	}
	st.MeanZ = sum / float64(finite)
	return st
}

// Stats summarizes the current grid.
func (f *Field) Stats() Stats { return Summarize(f.coords, len(f.stencil)) }
