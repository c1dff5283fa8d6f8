package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"idlib/internal/mesh"
	"idlib/mathutil"
	"idlib/rgb"
)

type Mat4 = mathutil.Mat4[float64]

// Scene describes one image: a primitive mesh, the model transform applied
// to it, a camera and a projection.
type Scene struct {
	Name       string     `yaml:"name"`
	Mesh       string     `yaml:"mesh"`
	Color      string     `yaml:"color"`
	Texture    string     `yaml:"texture"`
	Model      []Step     `yaml:"model"`
	Camera     Camera     `yaml:"camera"`
	Projection Projection `yaml:"projection"`

	// Dir is the directory the scene was loaded from; relative texture
	// paths resolve against it.
	Dir string `yaml:"-"`
}

// Step is one model transform. Exactly one field must be set.
type Step struct {
	Translate *[3]float64 `yaml:"translate"`
	Scale     *[3]float64 `yaml:"scale"`
	RotateX   *float64    `yaml:"rotate_x"`
	RotateY   *float64    `yaml:"rotate_y"`
	RotateZ   *float64    `yaml:"rotate_z"`
	Rotate    *AxisAngle  `yaml:"rotate"`
}

// AxisAngle is a rotation of Deg degrees about Axis.
type AxisAngle struct {
	Axis [3]float64 `yaml:"axis"`
	Deg  float64    `yaml:"deg"`
}

// Load reads and validates a YAML scene file. Name defaults to the file stem.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sc.Dir = filepath.Dir(path)
	return sc, nil
}

// Parse decodes a YAML scene and fills defaults.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if sc.Mesh == "" {
		sc.Mesh = "cube"
	}
	if sc.Color == "" {
		sc.Color = "#a0a0aa"
	}
	sc.Projection.fill()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadDir loads every .yaml and .yml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scene: read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	scenes := make([]*Scene, 0, len(names))
	for _, n := range names {
		sc, err := Load(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, sc)
	}
	return scenes, nil
}

// Validate checks every field that can be checked without rendering.
func (sc *Scene) Validate() error {
	if _, err := sc.BaseColor(); err != nil {
		return err
	}
	if _, err := mesh.Primitive(sc.Mesh, rgb.Black); err != nil {
		return err
	}
	for i, st := range sc.Model {
		if _, err := st.Matrix(); err != nil {
			return fmt.Errorf("model step %d: %w", i, err)
		}
	}
	if _, err := sc.ViewMatrix(); err != nil {
		return err
	}
	if _, err := sc.ProjectionMatrix(1); err != nil {
		return err
	}
	return nil
}

func (sc *Scene) BaseColor() (rgb.Color, error) {
	return rgb.ParseHex(sc.Color)
}

// BuildMesh returns the scene's primitive in model space.
func (sc *Scene) BuildMesh() (*mesh.Mesh, error) {
	col, err := sc.BaseColor()
	if err != nil {
		return nil, err
	}
	return mesh.Primitive(sc.Mesh, col)
}

// TexturePath resolves the texture file name, or "" when none is set.
func (sc *Scene) TexturePath() string {
	if sc.Texture == "" || filepath.IsAbs(sc.Texture) {
		return sc.Texture
	}
	return filepath.Join(sc.Dir, sc.Texture)
}

var errStep = errors.New("a model step needs exactly one transform")

// Matrix returns the transform of one step.
func (st Step) Matrix() (Mat4, error) {
	var out []Mat4
	if st.Translate != nil {
		out = append(out, mathutil.Translation(mathutil.Vec3[float64](*st.Translate)))
	}
	if st.Scale != nil {
		out = append(out, mathutil.Scaling(mathutil.Vec3[float64](*st.Scale)))
	}
	if st.RotateX != nil {
		out = append(out, mathutil.RotationX(mathutil.Deg(*st.RotateX)))
	}
	if st.RotateY != nil {
		out = append(out, mathutil.RotationY(mathutil.Deg(*st.RotateY)))
	}
	if st.RotateZ != nil {
		out = append(out, mathutil.RotationZ(mathutil.Deg(*st.RotateZ)))
	}
	if st.Rotate != nil {
		m, ok := mathutil.RotationAxis(mathutil.Vec3[float64](st.Rotate.Axis), mathutil.Deg(st.Rotate.Deg))
		if !ok {
			return Mat4{}, fmt.Errorf("rotate: zero axis")
		}
		out = append(out, m)
	}
	if len(out) != 1 {
		return Mat4{}, errStep
	}
	return out[0], nil
}

// ModelMatrix composes the steps so that the first listed step is applied
// to the mesh first.
func (sc *Scene) ModelMatrix() (Mat4, error) {
	m := mathutil.Mat4Identity[float64]()
	for i, st := range sc.Model {
		s, err := st.Matrix()
		if err != nil {
			return Mat4{}, fmt.Errorf("model step %d: %w", i, err)
		}
		m = mathutil.Mat4Mul(s, m)
	}
	return m, nil
}
