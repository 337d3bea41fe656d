package field

import "gonum.org/v1/gonum/spatial/r3"

// Normals returns one unit normal per coordinate, averaged from the faces
// that share it and weighted by face area. Faces are oriented towards +z
// before accumulation since a height field is viewed from above. Points that
// belong to no triangle get the zero vector.
func Normals(coords []Coordinate, s Stencil) []r3.Vec {
	acc := make([]r3.Vec, len(coords))
	for _, tri := range s {
		a, b, c := point(coords[tri[0]]), point(coords[tri[1]]), point(coords[tri[2]])
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if n.Z < 0 {
			n = r3.Scale(-1, n)
		}
		for _, idx := range tri {
			acc[idx] = r3.Add(acc[idx], n)
		}
	}
	for i, n := range acc {
		if l := r3.Norm(n); l > 0 {
			acc[i] = r3.Scale(1/l, n)
		}
	}
	return acc
}

func point(c Coordinate) r3.Vec {
	return r3.Vec{X: float64(c.X), Y: float64(c.Y), Z: c.Z}
}

// Normals returns the vertex normals of the current grid.
func (f *Field) Normals() []r3.Vec { return Normals(f.coords, f.stencil) }
