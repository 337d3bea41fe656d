//go:build ebiten

package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// MeshPainter draws a projected triangle mesh with flat vertex colours.
type MeshPainter struct {
	src   *ebiten.Image
	verts []ebiten.Vertex
	order []int
}

// NewMeshPainter allocates the shared white source texture.
func NewMeshPainter() *MeshPainter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &MeshPainter{src: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw paints the triangles in indices onto dst, back to front.
func (mp *MeshPainter) Draw(dst *ebiten.Image, verts []Vertex, indices []uint16, base color.Color) {
	if len(indices) == 0 {
		return
	}
	if cap(mp.verts) < len(verts) {
		mp.verts = make([]ebiten.Vertex, len(verts))
	}
	mp.verts = mp.verts[:len(verts)]
	for i, v := range verts {
		r, g, b, a := shadeRGBA(base, v.Shade)
		mp.verts[i] = ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	sorted := mp.depthSort(verts, indices)
	dst.DrawTriangles(mp.verts, sorted, mp.src, &ebiten.DrawTrianglesOptions{})
}

// depthSort orders triangles so the farthest are drawn first.
func (mp *MeshPainter) depthSort(verts []Vertex, indices []uint16) []uint16 {
	n := len(indices) / 3
	if cap(mp.order) < n {
		mp.order = make([]int, n)
	}
	mp.order = mp.order[:n]
	for i := range mp.order {
		mp.order[i] = i
	}
	depth := func(t int) float32 {
		return verts[indices[3*t]].Depth + verts[indices[3*t+1]].Depth + verts[indices[3*t+2]].Depth
	}
	sort.Slice(mp.order, func(a, b int) bool { return depth(mp.order[a]) < depth(mp.order[b]) })
	out := make([]uint16, 0, len(indices))
	for _, t := range mp.order {
		out = append(out, indices[3*t], indices[3*t+1], indices[3*t+2])
	}
	return out
}
