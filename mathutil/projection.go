package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrProjection is wrapped by every projection construction error.
var ErrProjection = errors.New("invalid projection")

// Ortho returns an orthographic projection mapping the box
// [left, right] × [bottom, top] × [-near, -far] onto the unit cube.
//
//	| 2/a  0    0    u |
//	| 0    2/b  0    v |
//	| 0    0   -2/c  w |
//	| 0    0    0    1 |
//
// with a = right-left, b = top-bottom, c = far-near, u = -(right+left)/a,
// v = -(top+bottom)/b, w = -(far+near)/c. The positive z-axis points out of
// the screen.
func Ortho[T Float](left, right, bottom, top, near, far T) (Mat4[T], error) {
	a := right - left
	b := top - bottom
	c := far - near
	if a == 0 || b == 0 || c == 0 || math.IsNaN(float64(a+b+c)) {
		return Mat4[T]{}, fmt.Errorf("mathutil: ortho %vx%vx%v: %w", a, b, c, ErrProjection)
	}

	u := -(right + left) / a
	v := -(top + bottom) / b
	w := -(far + near) / c

	return Mat4[T]{
		{2 / a, 0, 0, u},
		{0, 2 / b, 0, v},
		{0, 0, -2 / c, w},
		{0, 0, 0, 1},
	}, nil
}

// Perspective returns a perspective projection with vertical field of view
// fovy and aspect ratio width/height.
//
//	| f/aspect 0  0                0              |
//	| 0        f  0                0              |
//	| 0        0  (far+near)/(n-f) 2·far·near/(n-f) |
//	| 0        0  -1               0              |
//
// with f = cot(fovy/2). Points at z = -near map to depth -1 and points at
// z = -far to depth +1.
func Perspective[T Float, U Unit](fovy Angle[T, U], aspect, near, far T) (Mat4[T], error) {
	deg := fovy.Degrees().Value()
	switch {
	case !(deg > 0 && deg < 180):
		return Mat4[T]{}, fmt.Errorf("mathutil: perspective fovy %v: %w", fovy, ErrProjection)
	case !(aspect > 0):
		return Mat4[T]{}, fmt.Errorf("mathutil: perspective aspect %v: %w", aspect, ErrProjection)
	case !(near > 0 && far > near):
		return Mat4[T]{}, fmt.Errorf("mathutil: perspective near %v far %v: %w", near, far, ErrProjection)
	}

	f := 1 / Rad(fovy.Radians().Value()/2).Tan()
	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), (2 * far * near) / (near - far)},
		{0, 0, -1, 0},
	}, nil
}
