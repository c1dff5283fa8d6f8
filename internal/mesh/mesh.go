package mesh

import (
	"fmt"

	"idlib/mathutil"
	"idlib/rgb"
)

type (
	Point = mathutil.Point3[float64]
	UV    = mathutil.Vec2[float64]
)

// Triangle holds index triples into the vertex and texcoord arrays and the
// face color used when no texture is bound.
type Triangle struct {
	VI    [3]int
	TI    [3]int
	Color rgb.Color
}

// Mesh is a triangle soup in model space.
type Mesh struct {
	Verts []Point
	UVs   []UV
	Tris  []Triangle
}

// Validate checks that every triangle indexes existing vertices and texcoords.
func (m *Mesh) Validate() error {
	for i, t := range m.Tris {
		for k := 0; k < 3; k++ {
			if t.VI[k] < 0 || t.VI[k] >= len(m.Verts) {
				return fmt.Errorf("mesh: triangle %d: vertex index %d out of range [0, %d)", i, t.VI[k], len(m.Verts))
			}
			if t.TI[k] < 0 || t.TI[k] >= len(m.UVs) {
				return fmt.Errorf("mesh: triangle %d: texcoord index %d out of range [0, %d)", i, t.TI[k], len(m.UVs))
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() (lo, hi Point) {
	if len(m.Verts) == 0 {
		return lo, hi
	}
	lo, hi = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v[k])
			hi[k] = max(hi[k], v[k])
		}
	}
	return lo, hi
}

// Transform returns a copy of m with every vertex multiplied by t.
func (m *Mesh) Transform(t mathutil.Mat4[float64]) *Mesh {
	out := &Mesh{
		Verts: make([]Point, len(m.Verts)),
		UVs:   m.UVs,
		Tris:  m.Tris,
	}
	for i, v := range m.Verts {
		out.Verts[i] = t.MulPoint(v)
	}
	return out
}
