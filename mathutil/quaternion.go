package mathutil

// Quat represents a quaternion (x, y, z, w).
type Quat[T Float] [4]T

func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// EulerToQuat converts Euler XYZ angles to a quaternion. The result rotates
// about X first, then Y, then Z.
func EulerToQuat[T Float, U Unit](rx, ry, rz Angle[T, U]) Quat[T] {
	hx, hy, hz := Rad(rx.Radians().v/2), Rad(ry.Radians().v/2), Rad(rz.Radians().v/2)
	cx, sx := hx.Cos(), hx.Sin()
	cy, sy := hy.Cos(), hy.Sin()
	cz, sz := hz.Cos(), hz.Sin()

	return Quat[T]{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// AxisAngleQuat returns the rotation of a around axis. A zero axis yields
// the identity and false.
func AxisAngleQuat[T Float, U Unit](axis Vec3[T], a Angle[T, U]) (Quat[T], bool) {
	n, ok := axis.Normalize()
	if !ok {
		return QuatIdentity[T](), false
	}
	h := Rad(a.Radians().v / 2)
	s := h.Sin()
	return Quat[T]{n[0] * s, n[1] * s, n[2] * s, h.Cos()}, true
}

// Mul returns the Hamilton product q × r (apply r, then q).
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		q[3]*r[0] + q[0]*r[3] + q[1]*r[2] - q[2]*r[1],
		q[3]*r[1] - q[0]*r[2] + q[1]*r[3] + q[2]*r[0],
		q[3]*r[2] + q[0]*r[1] - q[1]*r[0] + q[2]*r[3],
		q[3]*r[3] - q[0]*r[0] - q[1]*r[1] - q[2]*r[2],
	}
}

func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q[0], -q[1], -q[2], q[3]}
}

func (q Quat[T]) Normalize() (Quat[T], bool) {
	v, ok := Vec4[T](q).Normalize()
	if !ok {
		return QuatIdentity[T](), false
	}
	return Quat[T](v), true
}

// Mat3 converts a unit quaternion to a 3×3 rotation matrix.
func (q Quat[T]) Mat3() Mat3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3[T]{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}
