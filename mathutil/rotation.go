package mathutil

// RotX returns a 3×3 rotation matrix around the X axis.
func RotX[T Float, U Unit](a Angle[T, U]) Mat3[T] {
	c, s := a.Cos(), a.Sin()
	return Mat3[T]{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY[T Float, U Unit](a Angle[T, U]) Mat3[T] {
	c, s := a.Cos(), a.Sin()
	return Mat3[T]{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ[T Float, U Unit](a Angle[T, U]) Mat3[T] {
	c, s := a.Cos(), a.Sin()
	return Mat3[T]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotAxis returns a 3×3 rotation of a around axis (right-handed).
// A zero axis yields the identity and false.
func RotAxis[T Float, U Unit](axis Vec3[T], a Angle[T, U]) (Mat3[T], bool) {
	n, ok := axis.Normalize()
	if !ok {
		return Mat3Identity[T](), false
	}
	c, s := a.Cos(), a.Sin()
	k := 1 - c
	x, y, z := n[0], n[1], n[2]
	return Mat3[T]{
		{c + x*x*k, x*y*k - z*s, x*z*k + y*s},
		{y*x*k + z*s, c + y*y*k, y*z*k - x*s},
		{z*x*k - y*s, z*y*k + x*s, c + z*z*k},
	}, true
}

func RotationX[T Float, U Unit](a Angle[T, U]) Mat4[T] {
	return FromMat3Translation(RotX(a), Vec3[T]{})
}

func RotationY[T Float, U Unit](a Angle[T, U]) Mat4[T] {
	return FromMat3Translation(RotY(a), Vec3[T]{})
}

func RotationZ[T Float, U Unit](a Angle[T, U]) Mat4[T] {
	return FromMat3Translation(RotZ(a), Vec3[T]{})
}

// RotationAxis is the 4×4 form of RotAxis.
func RotationAxis[T Float, U Unit](axis Vec3[T], a Angle[T, U]) (Mat4[T], bool) {
	r, ok := RotAxis(axis, a)
	return FromMat3Translation(r, Vec3[T]{}), ok
}
