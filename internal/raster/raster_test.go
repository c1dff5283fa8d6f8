package raster

import (
	"image"
	"math"
	"testing"

	"idlib/internal/mesh"
	"idlib/internal/scene"
	"idlib/mathutil"
	"idlib/rgb"
)

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	if len(fb.Color) != 24 || len(fb.ZBuf) != 6 {
		t.Fatalf("len(Color), len(ZBuf) = %d, %d, want 24, 6", len(fb.Color), len(fb.ZBuf))
	}
	for i, z := range fb.ZBuf {
		if !math.IsInf(z, -1) {
			t.Fatalf("ZBuf[%d] = %v, want -Inf", i, z)
		}
	}
	fb.Fill(rgb.New(1, 2, 3))
	img := fb.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(2, 1); got.R != 1 || got.G != 2 || got.B != 3 || got.A != 255 {
		t.Errorf("pixel = %v, want {1 2 3 255}", got)
	}
}

func TestProjectVerticesRejectsBehindCamera(t *testing.T) {
	proj, err := mathutil.Perspective(mathutil.Deg(90.0), 1, 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}
	verts := []mesh.Point{{0, 0, -1}, {0, 0, 1}, {0, 0, 0}}
	sv, ok := ProjectVertices(verts, proj, 100, 100)
	if !ok[0] || ok[1] || ok[2] {
		t.Fatalf("ok = %v, want [true false false]", ok)
	}
	if math.Abs(sv[0].X-50) > 1e-9 || math.Abs(sv[0].Y-50) > 1e-9 {
		t.Errorf("center vertex at (%v, %v), want (50, 50)", sv[0].X, sv[0].Y)
	}
}

func TestProjectVerticesScreenOrientation(t *testing.T) {
	proj, err := mathutil.Ortho(-1.0, 1, -1, 1, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	sv, ok := ProjectVertices([]mesh.Point{{-1, 1, -1}, {1, -1, -1}}, proj, 10, 20)
	if !ok[0] || !ok[1] {
		t.Fatalf("ok = %v", ok)
	}
	// NDC +y is screen row 0.
	if sv[0].X != 0 || sv[0].Y != 0 || sv[1].X != 10 || sv[1].Y != 20 {
		t.Errorf("screen = %+v, %+v", sv[0], sv[1])
	}
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	lc := DefaultLightConfig()
	var uv [3]mathutil.Vec2[float64]

	far := [3]ScreenVertex{{0, 0, -0.5, 1}, {8, 0, -0.5, 1}, {0, 8, -0.5, 1}}
	near := [3]ScreenVertex{{0, 0, 0.5, 1}, {8, 0, 0.5, 1}, {0, 8, 0.5, 1}}

	RasterizeTriangle(fb, near, uv, nil, rgb.New(255, 0, 0), 1, &lc)
	RasterizeTriangle(fb, far, uv, nil, rgb.New(0, 0, 255), 1, &lc)

	i := (1*8 + 1) * 4
	if fb.Color[i] == 0 || fb.Color[i+2] != 0 {
		t.Errorf("pixel (1,1) = %v, want the nearer red triangle", fb.Color[i:i+4])
	}
	if math.Abs(fb.ZBuf[1*8+1]-0.5) > 1e-12 {
		t.Errorf("depth = %v, want 0.5", fb.ZBuf[1*8+1])
	}
	// Outside the triangle stays empty.
	if a := fb.Color[(7*8+7)*4+3]; a != 0 {
		t.Errorf("pixel (7,7) alpha = %d, want 0", a)
	}
}

func TestSampleTextureWraps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range tex.Pix {
		tex.Pix[i] = 200
	}
	r, _, _, a := SampleTexture(tex, mathutil.Vec2[float64]{3.25, -1.5})
	if r != 200 || a != 200 {
		t.Errorf("sample = %d, %d, want 200, 200", r, a)
	}
}

func TestComputeShadeTwoSided(t *testing.T) {
	lc := DefaultLightConfig()
	n := Vec3{0, 0, 1}
	if a, b := lc.ComputeShade(n), lc.ComputeShade(n.Neg()); a != b {
		t.Errorf("shade front %v != back %v", a, b)
	}
}

func TestFaceNormal(t *testing.T) {
	n, ok := FaceNormal(mesh.Point{0, 0, 0}, mesh.Point{1, 0, 0}, mesh.Point{0, 1, 0})
	if !ok || n != (Vec3{0, 0, 1}) {
		t.Errorf("FaceNormal = %v, %v, want (0,0,1), true", n, ok)
	}
	if _, ok := FaceNormal(mesh.Point{}, mesh.Point{1, 1, 1}, mesh.Point{2, 2, 2}); ok {
		t.Error("FaceNormal of collinear points reported ok")
	}
}

func TestRenderCube(t *testing.T) {
	sc, err := scene.Parse([]byte("mesh: cube\ncolor: \"#ff8000\"\ncamera: {preset: front}\n"))
	if err != nil {
		t.Fatal(err)
	}
	img, err := Render(sc, nil, 32, 2)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Fatalf("width = %d, want 64", img.Bounds().Dx())
	}
	if c := img.NRGBAAt(32, 32); c.A != 255 || c.R <= c.B {
		t.Errorf("center = %v, want opaque orange", c)
	}
	if c := img.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("corner = %v, want transparent", c)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	sc, err := scene.Parse([]byte("mesh: quad\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Render(sc, nil, 0, 1); err == nil {
		t.Error("Render with size 0 succeeded")
	}
}
