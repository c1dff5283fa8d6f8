package mathutil

// Translation returns the affine matrix that moves points by t.
//
//	| 1 0 0 tx |
//	| 0 1 0 ty |
//	| 0 0 1 tz |
//	| 0 0 0 1  |
func Translation[T Scalar](t Vec3[T]) Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, t[0]},
		{0, 1, 0, t[1]},
		{0, 0, 1, t[2]},
		{0, 0, 0, 1},
	}
}

// Scaling returns the matrix that scales each axis by s.
func Scaling[T Scalar](s Vec3[T]) Mat4[T] {
	return FromMat3Translation(Mat3Diag(s[0], s[1], s[2]), Vec3[T]{})
}

// LookAt returns a right-handed view matrix for a camera at eye looking at
// center. The camera looks down its negative z-axis. It returns false when
// eye and center coincide or up is parallel to the view direction.
func LookAt[T Float](eye, center Point3[T], up Vec3[T]) (Mat4[T], bool) {
	f, ok := center.Sub(eye).Normalize()
	if !ok {
		return Mat4Identity[T](), false
	}
	s, ok := f.Cross(up).Normalize()
	if !ok {
		return Mat4Identity[T](), false
	}
	u := s.Cross(f)
	e := eye.Vec()
	return Mat4[T]{
		{s[0], s[1], s[2], -s.Dot(e)},
		{u[0], u[1], u[2], -u.Dot(e)},
		{-f[0], -f[1], -f[2], f.Dot(e)},
		{0, 0, 0, 1},
	}, true
}
