package mathutil

// Mat4 is a 4×4 matrix stored row-major: m[row][col]. Points are column
// vectors, so the translation lives in the last column.
type Mat4[T Scalar] [4][4]T

func Mat4Identity[T Scalar]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero[T Scalar]() Mat4[T] {
	return Mat4[T]{}
}

// Mat4Mul returns a × b.
func Mat4Mul[T Scalar](a, b Mat4[T]) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] +
				a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return m
}

// Mat4Chain multiplies left to right: Mat4Chain(a, b, c) = a × b × c.
// An empty chain is the identity.
func Mat4Chain[T Scalar](ms ...Mat4[T]) Mat4[T] {
	out := Mat4Identity[T]()
	for _, m := range ms {
		out = Mat4Mul(out, m)
	}
	return out
}

// MulVec4 returns M × v.
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	var out Vec4[T]
	for r := 0; r < 4; r++ {
		out[r] = m[r][0]*v[0] + m[r][1]*v[1] + m[r][2]*v[2] + m[r][3]*v[3]
	}
	return out
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix, ignoring the
// projective row.
func (m Mat4[T]) MulPoint(p Point3[T]) Point3[T] {
	return Point3[T]{
		m[0][0]*p[0] + m[0][1]*p[1] + m[0][2]*p[2] + m[0][3],
		m[1][0]*p[0] + m[1][1]*p[1] + m[1][2]*p[2] + m[1][3],
		m[2][0]*p[0] + m[2][1]*p[1] + m[2][2]*p[2] + m[2][3],
	}
}

// MulDir transforms a direction (w=0); translation has no effect.
func (m Mat4[T]) MulDir(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T](m[i])
}

func (m Mat4[T]) Col(j int) Vec4[T] {
	return Vec4[T]{m[0][j], m[1][j], m[2][j], m[3][j]}
}

func (a Mat4[T]) Add(b Mat4[T]) Mat4[T] {
	for r := range a {
		for c := range a[r] {
			a[r][c] += b[r][c]
		}
	}
	return a
}

func (a Mat4[T]) Sub(b Mat4[T]) Mat4[T] {
	for r := range a {
		for c := range a[r] {
			a[r][c] -= b[r][c]
		}
	}
	return a
}

func (m Mat4[T]) Scale(s T) Mat4[T] {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

func (m Mat4[T]) Transpose() Mat4[T] {
	var t Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

func (m Mat4[T]) Trace() T {
	return m[0][0] + m[1][1] + m[2][2] + m[3][3]
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation[T Scalar](r Mat3[T], t Vec3[T]) Mat4[T] {
	return Mat4[T]{
		{r[0][0], r[0][1], r[0][2], t[0]},
		{r[1][0], r[1][1], r[1][2], t[1]},
		{r[2][0], r[2][1], r[2][2], t[2]},
		{0, 0, 0, 1},
	}
}

// InverseAffine inverts a matrix whose bottom row is (0, 0, 0, 1).
// A singular linear part yields the identity and false.
func (m Mat4[T]) InverseAffine() (Mat4[T], bool) {
	ri, ok := m.Mat3().Inverse()
	if !ok {
		return Mat4Identity[T](), false
	}
	t := ri.MulVec3(Vec3[T]{m[0][3], m[1][3], m[2][3]}).Neg()
	return FromMat3Translation(ri, t), true
}

// IsIdentity checks if the matrix is identity within eps.
func (m Mat4[T]) IsIdentity(eps T) bool {
	return m.ApproxEqual(Mat4Identity[T](), eps)
}

func (a Mat4[T]) ApproxEqual(b Mat4[T], eps T) bool {
	for r := range a {
		for c := range a[r] {
			if abs(a[r][c]-b[r][c]) > eps {
				return false
			}
		}
	}
	return true
}
