package raster

import (
	"fmt"
	"image"

	"github.com/dgravesa/go-parallel/parallel"

	"idlib/internal/mesh"
	"idlib/internal/scene"
	"idlib/mathutil"
)

// nearW is the smallest clip-space w accepted for a vertex. Triangles with a
// vertex at or behind the camera plane are dropped rather than clipped.
const nearW = 1e-6

// Render draws sc into a square image of size*supersample pixels. tex may be
// nil. The result still has to be downsampled by the caller.
func Render(sc *scene.Scene, tex *image.NRGBA, size, supersample int) (*image.NRGBA, error) {
	if size <= 0 || supersample <= 0 {
		return nil, fmt.Errorf("raster: render %s: invalid size %d x%d", sc.Name, size, supersample)
	}

	m, err := sc.BuildMesh()
	if err != nil {
		return nil, fmt.Errorf("raster: render %s: %w", sc.Name, err)
	}
	model, err := sc.ModelMatrix()
	if err != nil {
		return nil, fmt.Errorf("raster: render %s: %w", sc.Name, err)
	}
	view, err := sc.ViewMatrix()
	if err != nil {
		return nil, fmt.Errorf("raster: render %s: %w", sc.Name, err)
	}
	proj, err := sc.ProjectionMatrix(1)
	if err != nil {
		return nil, fmt.Errorf("raster: render %s: %w", sc.Name, err)
	}

	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	world := m.Transform(model)
	DrawMesh(fb, world, mathutil.Mat4Mul(proj, view), tex, &lc)

	return fb.Image(), nil
}

// DrawMesh rasterizes a world-space mesh through the combined
// projection*view matrix. Normals for shading come from world space.
func DrawMesh(fb *FrameBuffer, world *mesh.Mesh, viewProj mathutil.Mat4[float64], tex *image.NRGBA, lc *LightConfig) {
	sv, ok := ProjectVertices(world.Verts, viewProj, fb.Width, fb.Height)

	for _, tri := range world.Tris {
		a, b, c := tri.VI[0], tri.VI[1], tri.VI[2]
		if !ok[a] || !ok[b] || !ok[c] {
			continue
		}
		n, valid := FaceNormal(world.Verts[a], world.Verts[b], world.Verts[c])
		if !valid {
			continue
		}
		var uv [3]mathutil.Vec2[float64]
		if tex != nil {
			uv = [3]mathutil.Vec2[float64]{world.UVs[tri.TI[0]], world.UVs[tri.TI[1]], world.UVs[tri.TI[2]]}
		}
		RasterizeTriangle(fb, [3]ScreenVertex{sv[a], sv[b], sv[c]}, uv, tex, tri.Color, lc.ComputeShade(n), lc)
	}
}

// ProjectVertices maps world-space points to screen space in parallel. The
// second result reports which vertices lie in front of the camera.
func ProjectVertices(verts []mesh.Point, viewProj mathutil.Mat4[float64], w, h int) ([]ScreenVertex, []bool) {
	out := make([]ScreenVertex, len(verts))
	ok := make([]bool, len(verts))

	parallel.For(len(verts), func(i, _ int) {
		clip := viewProj.MulVec4(verts[i].Homogeneous())
		if clip[3] <= nearW {
			return
		}
		ndc, _ := clip.Homogenize()
		out[i] = ScreenVertex{
			X:    (ndc[0] + 1) / 2 * float64(w),
			Y:    (1 - ndc[1]) / 2 * float64(h),
			Z:    -ndc[2],
			InvW: 1 / clip[3],
		}
		ok[i] = true
	})

	return out, ok
}
