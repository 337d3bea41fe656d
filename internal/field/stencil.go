package field

// Stencil lists the grid-index triples of every triangle in a grid. It
// depends only on the grid dimensions.
type Stencil [][3]int

// NewStencil triangulates an xLen by yLen grid whose points are stored at
// index y + x*yLen.
//
// Labelling the current point a, b is its neighbour one step up in y, c the
// point one row over in x and d the point below c:
//
//	b
//	|  \
//	|    \
//	a - - c
//	  \   |
//	    \ |
//	      d
//
// Points in the last x row have no c and contribute nothing. Otherwise the
// upper triangle (a, b, c) is emitted when b exists and the lower triangle
// (d, c, a) when d exists.
func NewStencil(xLen, yLen int) Stencil {
	if xLen < 2 || yLen < 2 {
		return Stencil{}
	}
	s := make(Stencil, 0, 2*(xLen-1)*(yLen-1))
	for x := 0; x < xLen-1; x++ {
		for y := 0; y < yLen; y++ {
			here := y + x*yLen
			right := here + yLen
			if y < yLen-1 {
				s = append(s, [3]int{here, here + 1, right})
			}
			if y >= 1 {
				s = append(s, [3]int{right - 1, right, here})
			}
		}
	}
	return s
}

// Flatten returns the stencil as a flat index list, three per triangle.
func (s Stencil) Flatten() []int {
	out := make([]int, 0, 3*len(s))
	for _, tri := range s {
		out = append(out, tri[0], tri[1], tri[2])
	}
	return out
}

// TriangleCount returns the number of triangles NewStencil produces for the
// given dimensions.
func TriangleCount(xLen, yLen int) int {
	if xLen < 2 || yLen < 2 {
		return 0
	}
	return 2 * (xLen - 1) * (yLen - 1)
}
