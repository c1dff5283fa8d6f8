package mesh

import (
	"fmt"
	"math"
	"sort"

	"idlib/rgb"
)

var quadUVs = []UV{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// quad appends two triangles covering a, b, c, d (counter-clockwise seen
// from outside) with the full texture mapped onto them.
func (m *Mesh) quad(a, b, c, d int, col rgb.Color) {
	m.Tris = append(m.Tris,
		Triangle{VI: [3]int{a, b, c}, TI: [3]int{0, 1, 2}, Color: col},
		Triangle{VI: [3]int{a, c, d}, TI: [3]int{0, 2, 3}, Color: col},
	)
}

// Cube returns the axis-aligned cube [-1, 1]³.
func Cube(col rgb.Color) *Mesh {
	m := &Mesh{
		Verts: []Point{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		UVs: quadUVs,
	}
	m.quad(4, 5, 6, 7, col) // +z
	m.quad(1, 0, 3, 2, col) // -z
	m.quad(5, 1, 2, 6, col) // +x
	m.quad(0, 4, 7, 3, col) // -x
	m.quad(7, 6, 2, 3, col) // +y
	m.quad(0, 1, 5, 4, col) // -y
	return m
}

// Quad returns the unit square [-1, 1]² in the z = 0 plane facing +z.
func Quad(col rgb.Color) *Mesh {
	m := &Mesh{
		Verts: []Point{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}},
		UVs:   quadUVs,
	}
	m.quad(0, 1, 2, 3, col)
	return m
}

// Tetrahedron returns a regular tetrahedron inscribed in the unit sphere.
func Tetrahedron(col rgb.Color) *Mesh {
	s := 1 / math.Sqrt(3)
	m := &Mesh{
		Verts: []Point{{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s}},
		UVs:   []UV{{0, 0}, {1, 0}, {0.5, 1}},
	}
	for _, f := range [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}} {
		m.Tris = append(m.Tris, Triangle{VI: f, TI: [3]int{0, 1, 2}, Color: col})
	}
	return m
}

var primitives = map[string]func(rgb.Color) *Mesh{
	"cube":        Cube,
	"quad":        Quad,
	"tetrahedron": Tetrahedron,
}

// Primitive returns the named built-in mesh.
func Primitive(name string, col rgb.Color) (*Mesh, error) {
	fn, ok := primitives[name]
	if !ok {
		return nil, fmt.Errorf("mesh: unknown primitive %q (have %v)", name, Names())
	}
	return fn(col), nil
}

// Names lists the built-in primitives.
func Names() []string {
	names := make([]string, 0, len(primitives))
	for n := range primitives {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
