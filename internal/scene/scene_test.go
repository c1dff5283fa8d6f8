package scene

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"idlib/mathutil"
	"idlib/rgb"
)

func TestParseDefaults(t *testing.T) {
	sc, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Mesh != "cube" || sc.Color != "#a0a0aa" {
		t.Errorf("mesh, color = %q, %q", sc.Mesh, sc.Color)
	}
	want := Projection{Kind: "perspective", FovY: DefaultFovY, Height: DefaultHeight, Near: DefaultNear, Far: DefaultFar}
	if sc.Projection != want {
		t.Errorf("projection = %+v, want %+v", sc.Projection, want)
	}
	m, err := sc.ModelMatrix()
	if err != nil || !m.IsIdentity(0) {
		t.Errorf("ModelMatrix = %v, %v, want identity", m, err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"meshes: cube",
		"mesh: sphere",
		"color: red",
		"model: [{}]",
		"model: [{translate: [1,0,0], rotate_x: 90}]",
		"model: [{rotate: {axis: [0,0,0], deg: 10}}]",
		"camera: {preset: bottom}",
		"camera: {distance: -1}",
		"camera: {eye: [0,0,0]}",
		"camera: {eye: [0,0,4], preset: front}",
		"camera: {eye: [0,0,4], distance: 3}",
		"camera: {up: [0,0,1]}",
		"projection: {kind: fisheye}",
		"projection: {fovy: 180}",
		"projection: {near: 5, far: 1}",
	} {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("Parse(%q) succeeded", src)
		}
	}
}

func TestStepOrder(t *testing.T) {
	sc, err := Parse([]byte("model:\n  - translate: [1, 0, 0]\n  - rotate_z: 90\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := sc.ModelMatrix()
	if err != nil {
		t.Fatal(err)
	}
	// Translate first, then rotate about z: (0,0,0) -> (1,0,0) -> (0,1,0).
	got := m.MulPoint(mathutil.Point3[float64]{})
	if !got.Vec().ApproxEqual(mathutil.Vec3[float64]{0, 1, 0}, 1e-12) {
		t.Errorf("origin maps to %v, want (0, 1, 0)", got)
	}
}

func TestStepMatrix(t *testing.T) {
	s := [3]float64{2, 3, 4}
	m, err := Step{Scale: &s}.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	if m != mathutil.Scaling(mathutil.Vec3[float64]{2, 3, 4}) {
		t.Errorf("scale step = %v", m)
	}
	deg := 90.0
	m, err = Step{RotateX: &deg}.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	if !m.ApproxEqual(mathutil.RotationX(mathutil.Deg(90.0)), 0) {
		t.Errorf("rotate_x step = %v", m)
	}
}

func TestViewMatrixPreset(t *testing.T) {
	sc, err := Parse([]byte("camera: {preset: front, distance: 3, center: [1, 0, 0]}"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := sc.ViewMatrix()
	if err != nil {
		t.Fatal(err)
	}
	got := v.MulPoint(mathutil.Point3[float64]{1, 0, 0})
	if !got.Vec().ApproxEqual(mathutil.Vec3[float64]{0, 0, -3}, 1e-12) {
		t.Errorf("center maps to %v, want (0, 0, -3)", got)
	}
}

func TestViewMatrixPresetsOrthonormal(t *testing.T) {
	for _, name := range PresetNames() {
		r := presets[name]
		p := mathutil.Mat3Mul(r, r.Transpose())
		if !p.ApproxEqual(mathutil.Mat3Identity[float64](), 1e-12) {
			t.Errorf("preset %s is not orthonormal: %v", name, r)
		}
		if d := r.Det(); math.Abs(d-1) > 1e-12 {
			t.Errorf("preset %s det = %v", name, d)
		}
	}
}

func TestViewMatrixTopLooksDown(t *testing.T) {
	sc, err := Parse([]byte("camera: {preset: top}"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := sc.ViewMatrix()
	if err != nil {
		t.Fatal(err)
	}
	// A point above the origin is nearer to the camera.
	up := v.MulPoint(mathutil.Point3[float64]{0, 1, 0})
	if math.Abs(up[2]-(-DefaultDistance+1)) > 1e-12 {
		t.Errorf("(0,1,0) maps to %v, want z = %v", up, -DefaultDistance+1)
	}
}

func TestViewMatrixLookAt(t *testing.T) {
	sc, err := Parse([]byte("camera: {eye: [0, 0, 4]}"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := sc.ViewMatrix()
	if err != nil {
		t.Fatal(err)
	}
	if !v.ApproxEqual(mathutil.Translation(mathutil.Vec3[float64]{0, 0, -4}), 1e-12) {
		t.Errorf("view = %v", v)
	}
}

func TestProjectionMatrix(t *testing.T) {
	sc, err := Parse([]byte("projection: {kind: ortho, height: 2, near: 1, far: 3}"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := sc.ProjectionMatrix(2)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := mathutil.Ortho(-4.0, 4, -2, 2, 1, 3)
	if p != want {
		t.Errorf("ortho = %v, want %v", p, want)
	}
	if _, err := sc.ProjectionMatrix(0); err == nil {
		t.Error("ProjectionMatrix(0) succeeded")
	}
}

func TestBuildMesh(t *testing.T) {
	sc, err := Parse([]byte("mesh: quad\ncolor: \"#102030\""))
	if err != nil {
		t.Fatal(err)
	}
	m, err := sc.BuildMesh()
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Tris) != 2 || m.Tris[0].Color != rgb.New(0x10, 0x20, 0x30) {
		t.Errorf("mesh = %+v", m)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":    "mesh: quad\ntexture: wood.png\n",
		"a.yml":     "name: first\nmesh: tetrahedron\n",
		"notes.txt": "not a scene",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	scenes, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenes) != 2 || scenes[0].Name != "first" || scenes[1].Name != "b" {
		t.Fatalf("scenes = %+v", scenes)
	}
	if got, want := scenes[1].TexturePath(), filepath.Join(dir, "wood.png"); got != want {
		t.Errorf("TexturePath = %q, want %q", got, want)
	}
	if scenes[0].TexturePath() != "" {
		t.Errorf("TexturePath without texture = %q", scenes[0].TexturePath())
	}
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("mesh: [1"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("Load error = %v, want it to name the file", err)
	}
}
