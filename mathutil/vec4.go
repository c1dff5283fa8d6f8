package mathutil

// Vec4 is a 4-component vector, usually homogeneous coordinates.
type Vec4[T Scalar] [4]T

func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4[T]) SquaredLength() T {
	return v.Dot(v)
}

func (v Vec4[T]) Length() T {
	return Sqrt(v.SquaredLength())
}

func (v Vec4[T]) Normalize() (Vec4[T], bool) {
	sq := v.SquaredLength()
	if sq == 0 {
		return Vec4[T]{}, false
	}
	l := Sqrt(sq)
	return Vec4[T]{v[0] / l, v[1] / l, v[2] / l, v[3] / l}, true
}

func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] {
	t = Clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	s := 1 - t
	return Vec4[T]{s*a[0] + t*b[0], s*a[1] + t*b[1], s*a[2] + t*b[2], s*a[3] + t*b[3]}
}

func (v Vec4[T]) MinElement() T { return min(v[0], v[1], v[2], v[3]) }
func (v Vec4[T]) MaxElement() T { return max(v[0], v[1], v[2], v[3]) }
func (Vec4[T]) Dim() int        { return 4 }

func (a Vec4[T]) ApproxEqual(b Vec4[T], eps T) bool {
	for i := range a {
		if abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// XYZ drops the w component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Homogenize divides x, y and z by w. A zero w yields false.
func (v Vec4[T]) Homogenize() (Vec3[T], bool) {
	if v[3] == 0 {
		return Vec3[T]{}, false
	}
	return Vec3[T]{v[0] / v[3], v[1] / v[3], v[2] / v[3]}, true
}
