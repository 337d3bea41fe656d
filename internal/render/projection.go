package render

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"

	"wavefield/internal/core"
)

// View is a fixed orthographic view of a height field. Yaw turns the grid
// about the z axis; Pitch is the elevation of the eye above the grid plane,
// π/2 looking straight down.
type View struct {
	Yaw    float32
	Pitch  float32
	Scale  float32
	ZScale float32
	Width  int
	Height int
}

// DefaultView fits a size.X by size.Y grid into a width by height screen.
func DefaultView(size core.Size, width, height int) View {
	span := float32(max(size.X, size.Y, 1))
	return View{
		Yaw:    math32.Pi / 4,
		Pitch:  math32.Pi / 5,
		Scale:  0.6 * float32(min(width, height)) / span,
		ZScale: 2,
		Width:  width,
		Height: height,
	}
}

// Vertex is a projected grid point.
type Vertex struct {
	X, Y float32
	// Depth grows towards the eye.
	Depth float32
	Shade float32
	// Valid is false when the height was not finite.
	Valid bool
}

// light points from the surface towards the light source.
var light = normalize(r3.Vec{X: -0.4, Y: -0.3, Z: 0.85})

const ambient = 0.25

// Project maps heights (grid order, index y + x*size.Y) to screen space.
// normals may be nil, in which case every vertex is fully lit.
func Project(v View, size core.Size, heights []float64, normals []r3.Vec) []Vertex {
	out := make([]Vertex, len(heights))
	cy, sy := math32.Cos(v.Yaw), math32.Sin(v.Yaw)
	cp, sp := math32.Cos(v.Pitch), math32.Sin(v.Pitch)
	ox := float32(size.X-1) / 2
	oy := float32(size.Y-1) / 2
	for i, h := range heights {
		x := float32(i/size.Y) - ox
		y := float32(i%size.Y) - oy
		z := float32(h) * v.ZScale
		if math32.IsNaN(z) || math32.IsInf(z, 0) {
			continue
		}
		rx := x*cy - y*sy
		ry := x*sy + y*cy
		vert := Vertex{
			X:     float32(v.Width)/2 + v.Scale*rx,
			Y:     float32(v.Height)/2 + v.Scale*(ry*sp-z*cp),
			Depth: ry*cp + z*sp,
			Shade: 1,
			Valid: true,
		}
		if normals != nil {
			vert.Shade = shade(normals[i])
		}
		out[i] = vert
	}
	return out
}

func shade(n r3.Vec) float32 {
	d := float32(r3.Dot(n, light))
	return ambient + (1-ambient)*math32.Max(0, d)
}

func normalize(v r3.Vec) r3.Vec {
	return r3.Scale(1/r3.Norm(v), v)
}
