package render

import (
	"errors"
	"image/color"
)

// ErrTooManyVertices reports a grid whose vertex count exceeds 16-bit
// indexing.
var ErrTooManyVertices = errors.New("render: grid exceeds 65536 vertices")

// MaxVertices is the largest vertex count Indices16 can address.
const MaxVertices = 1 << 16

// Indices16 narrows a flat triangle index list for 16-bit draw calls,
// dropping triangles that touch an invalid vertex.
func Indices16(indices []int, verts []Vertex) ([]uint16, error) {
	if len(verts) > MaxVertices {
		return nil, ErrTooManyVertices
	}
	out := make([]uint16, 0, len(indices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if !verts[a].Valid || !verts[b].Valid || !verts[c].Valid {
			continue
		}
		out = append(out, uint16(a), uint16(b), uint16(c))
	}
	return out, nil
}

// shadeRGBA scales base by shade and returns normalized channel values.
func shadeRGBA(base color.Color, shade float32) (r, g, b, a float32) {
	cr, cg, cb, ca := base.RGBA()
	if shade < 0 {
		shade = 0
	}
	if shade > 1 {
		shade = 1
	}
	return float32(cr) / 0xffff * shade,
		float32(cg) / 0xffff * shade,
		float32(cb) / 0xffff * shade,
		float32(ca) / 0xffff
}
