package scene

import (
	"fmt"
	"sort"

	"idlib/mathutil"
)

type Mat3 = mathutil.Mat3[float64]

// Orientation presets. Each rotates the scene before it is pushed away from
// the camera along -z.
var (
	// ZUpFlip converts Z-up models to Y-up: Rx(-90°)
	ZUpFlip = mathutil.RotX(mathutil.Deg(-90.0))

	// Iso looks slightly down and to the side: Rx(15°) @ Ry(-30°)
	Iso = mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg(15.0)), mathutil.RotY(mathutil.Deg(-30.0)))

	presets = map[string]Mat3{
		"front": mathutil.Mat3Identity[float64](),
		"iso":   Iso,
		"top":   mathutil.RotX(mathutil.Deg(90.0)),
		"side":  mathutil.RotY(mathutil.Deg(-90.0)),
		"zup":   mathutil.Mat3Mul(Iso, ZUpFlip),
	}
)

// Camera places the viewer either with a preset orientation at Distance from
// the origin or explicitly with Eye, Center and Up.
type Camera struct {
	Preset   string      `yaml:"preset"`
	Distance float64     `yaml:"distance"`
	Eye      *[3]float64 `yaml:"eye"`
	Center   [3]float64  `yaml:"center"`
	Up       *[3]float64 `yaml:"up"`
}

// Projection selects a perspective or orthographic projection.
type Projection struct {
	Kind string `yaml:"kind"`
	// FovY is the vertical field of view in degrees (perspective).
	FovY float64 `yaml:"fovy"`
	// Height is the half-height of the view volume (ortho).
	Height float64 `yaml:"height"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

const (
	DefaultPreset   = "iso"
	DefaultDistance = 5.0
	DefaultFovY     = 45.0
	DefaultHeight   = 2.0
	DefaultNear     = 0.1
	DefaultFar      = 100.0
)

func (p *Projection) fill() {
	if p.Kind == "" {
		p.Kind = "perspective"
	}
	if p.FovY == 0 {
		p.FovY = DefaultFovY
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.Near == 0 {
		p.Near = DefaultNear
	}
	if p.Far == 0 {
		p.Far = DefaultFar
	}
}

// ViewMatrix returns the world-to-camera transform.
func (sc *Scene) ViewMatrix() (Mat4, error) {
	c := sc.Camera
	switch {
	case c.Eye != nil && (c.Preset != "" || c.Distance != 0):
		return Mat4{}, fmt.Errorf("camera: eye cannot be combined with preset or distance")
	case c.Eye == nil && c.Up != nil:
		return Mat4{}, fmt.Errorf("camera: up requires eye")
	}
	if c.Eye != nil {
		up := mathutil.Vec3[float64]{0, 1, 0}
		if c.Up != nil {
			up = *c.Up
		}
		v, ok := mathutil.LookAt(mathutil.Point3[float64](*c.Eye), mathutil.Point3[float64](c.Center), up)
		if !ok {
			return Mat4{}, fmt.Errorf("camera: eye %v, center %v, up %v do not define a view", *c.Eye, c.Center, up)
		}
		return v, nil
	}

	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}
	r, ok := presets[name]
	if !ok {
		return Mat4{}, fmt.Errorf("camera: unknown preset %q (have %v)", name, PresetNames())
	}
	dist := c.Distance
	if dist == 0 {
		dist = DefaultDistance
	}
	if dist < 0 {
		return Mat4{}, fmt.Errorf("camera: negative distance %v", dist)
	}
	center := mathutil.Vec3[float64](c.Center)
	return mathutil.Mat4Chain(
		mathutil.Translation(mathutil.Vec3[float64]{0, 0, -dist}),
		mathutil.FromMat3Translation(r, mathutil.Vec3[float64]{}),
		mathutil.Translation(center.Neg()),
	), nil
}

// ProjectionMatrix returns the camera-to-clip transform for an image with
// the given width/height ratio.
func (sc *Scene) ProjectionMatrix(aspect float64) (Mat4, error) {
	p := sc.Projection
	switch p.Kind {
	case "perspective":
		return mathutil.Perspective(mathutil.Deg(p.FovY), aspect, p.Near, p.Far)
	case "ortho":
		h := p.Height
		return mathutil.Ortho(-h*aspect, h*aspect, -h, h, p.Near, p.Far)
	}
	return Mat4{}, fmt.Errorf("projection: unknown kind %q", p.Kind)
}

// PresetNames lists the camera presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
