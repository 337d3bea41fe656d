package core

// Size describes the dimensions of a sampled grid.
type Size struct {
	X int
	Y int
}

// Cells returns the number of grid points.
func (s Size) Cells() int { return s.X * s.Y }

// Surface is the contract render and UI layers consume. Implementations own
// all geometry; consumers only read it and request recomputation.
type Surface interface {
	Size() Size
	// Heights returns z values in grid order (index y + x*Size().Y).
	Heights() []float64
	// Indices returns the flattened triangle stencil.
	Indices() []int
	NeedsRefresh() bool
	Refresh()
}
