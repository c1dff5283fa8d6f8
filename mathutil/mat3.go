package mathutil

// Mat3 is a 3×3 matrix stored row-major: m[row][col].
// Value type for zero heap allocation.
type Mat3[T Scalar] [3][3]T

func Mat3Identity[T Scalar]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Mat3Zero[T Scalar]() Mat3[T] {
	return Mat3[T]{}
}

func Mat3Diag[T Scalar](x, y, z T) Mat3[T] {
	return Mat3[T]{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}
}

// Mat3Mul returns a × b.
func Mat3Mul[T Scalar](a, b Mat3[T]) Mat3[T] {
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (a Mat3[T]) Add(b Mat3[T]) Mat3[T] {
	for r := range a {
		for c := range a[r] {
			a[r][c] += b[r][c]
		}
	}
	return a
}

func (a Mat3[T]) Sub(b Mat3[T]) Mat3[T] {
	for r := range a {
		for c := range a[r] {
			a[r][c] -= b[r][c]
		}
	}
	return a
}

func (m Mat3[T]) Scale(s T) Mat3[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

func (m Mat3[T]) Det() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m. A singular matrix yields the identity
// and false. Integer matrices are inverted with truncating division.
func (m Mat3[T]) Inverse() (Mat3[T], bool) {
	d := m.Det()
	if d == 0 {
		return Mat3Identity[T](), false
	}
	return Mat3[T]{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d,
		},
	}, true
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m Mat3[T]) Trace() T {
	return m[0][0] + m[1][1] + m[2][2]
}

func (a Mat3[T]) ApproxEqual(b Mat3[T], eps T) bool {
	for r := range a {
		for c := range a[r] {
			if abs(a[r][c]-b[r][c]) > eps {
				return false
			}
		}
	}
	return true
}
