package mathutil

// Vec2 is a 2-component vector.
type Vec2[T Scalar] [2]T

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-v[0], -v[1]}
}

func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v[0] * s, v[1] * s}
}

func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] * b[0], a[1] * b[1]}
}

func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2[T]) Cross(b Vec2[T]) T {
	return a[0]*b[1] - a[1]*b[0]
}

func (v Vec2[T]) SquaredLength() T {
	return v.Dot(v)
}

func (v Vec2[T]) Length() T {
	return Sqrt(v.SquaredLength())
}

func (v Vec2[T]) Normalize() (Vec2[T], bool) {
	sq := v.SquaredLength()
	if sq == 0 {
		return Vec2[T]{}, false
	}
	l := Sqrt(sq)
	return Vec2[T]{v[0] / l, v[1] / l}, true
}

func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	t = Clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	s := 1 - t
	return Vec2[T]{s*a[0] + t*b[0], s*a[1] + t*b[1]}
}

func (v Vec2[T]) MinElement() T { return min(v[0], v[1]) }
func (v Vec2[T]) MaxElement() T { return max(v[0], v[1]) }
func (Vec2[T]) Dim() int        { return 2 }

func (a Vec2[T]) ApproxEqual(b Vec2[T], eps T) bool {
	return abs(a[0]-b[0]) <= eps && abs(a[1]-b[1]) <= eps
}
