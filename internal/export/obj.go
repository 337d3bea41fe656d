// Package export writes sampled wave fields in interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"wavefield/internal/field"
)

// Mesh is the geometry WriteOBJ serializes. Normals may be nil; when set it
// must hold one entry per coordinate.
type Mesh struct {
	Name    string
	Coords  []field.Coordinate
	Stencil field.Stencil
	Normals []r3.Vec
}

// FromField captures the current geometry of f.
func FromField(name string, f *field.Field) Mesh {
	return Mesh{Name: name, Coords: f.Coords(), Stencil: f.Stencil(), Normals: f.Normals()}
}

// WriteOBJ writes m as a Wavefront OBJ document. Faces keep stencil winding.
func WriteOBJ(w io.Writer, m Mesh) error {
	if m.Normals != nil && len(m.Normals) != len(m.Coords) {
		return fmt.Errorf("export: %d normals for %d coordinates", len(m.Normals), len(m.Coords))
	}
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, c := range m.Coords {
		fmt.Fprintf(bw, "v %d %d %g\n", c.X, c.Y, c.Z)
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for _, tri := range m.Stencil {
		// OBJ indices are 1-based.
		a, b, c := tri[0]+1, tri[1]+1, tri[2]+1
		if m.Normals != nil {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			continue
		}
		fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
	}
	return bw.Flush()
}
