package mathutil

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3[T Scalar] [3]T

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v[0], -v[1], -v[2]}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v[0] * s, v[1] * s, v[2] * s}
}

// Mul multiplies componentwise.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a × b. The receiver and argument may be the same vector.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	return Vec3[T]{x, y, z}
}

func (v Vec3[T]) SquaredLength() T {
	return v.Dot(v)
}

// Length is truncated for integer vectors.
func (v Vec3[T]) Length() T {
	return Sqrt(v.SquaredLength())
}

// Normalize returns the unit vector in the direction of v.
// A zero vector yields the zero vector and false.
func (v Vec3[T]) Normalize() (Vec3[T], bool) {
	sq := v.SquaredLength()
	if sq == 0 {
		return Vec3[T]{}, false
	}
	l := Sqrt(sq)
	return Vec3[T]{v[0] / l, v[1] / l, v[2] / l}, true
}

// Lerp interpolates from a to b. t is clamped to [0, 1] and the end points
// are returned exactly.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	t = Clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	s := 1 - t
	return Vec3[T]{s*a[0] + t*b[0], s*a[1] + t*b[1], s*a[2] + t*b[2]}
}

func (v Vec3[T]) MinElement() T {
	return min(v[0], v[1], v[2])
}

func (v Vec3[T]) MaxElement() T {
	return max(v[0], v[1], v[2])
}

func (Vec3[T]) Dim() int { return 3 }

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3[T]) ApproxEqual(b Vec3[T], eps T) bool {
	for i := range a {
		if abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Extend returns the homogeneous vector (x, y, z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}
