package mathutil

// Point3 is a position in 3D space. Differences of points are vectors;
// points can be translated by vectors but never added to each other.
type Point3[T Scalar] [3]T

// Sub returns the vector from b to a.
func (a Point3[T]) Sub(b Point3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Translate returns p + v.
func (p Point3[T]) Translate(v Vec3[T]) Point3[T] {
	return Point3[T]{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// SubVec returns p - v.
func (p Point3[T]) SubVec(v Vec3[T]) Point3[T] {
	return Point3[T]{p[0] - v[0], p[1] - v[1], p[2] - v[2]}
}

// Vec returns the vector from the origin to p.
func (p Point3[T]) Vec() Vec3[T] {
	return Vec3[T](p)
}

func (p Point3[T]) Homogeneous() Vec4[T] {
	return Vec4[T]{p[0], p[1], p[2], 1}
}

func (a Point3[T]) Distance(b Point3[T]) T {
	return a.Sub(b).Length()
}

func (Point3[T]) Dim() int { return 3 }

// Point2 is a position in the plane.
type Point2[T Scalar] [2]T

func (a Point2[T]) Sub(b Point2[T]) Vec2[T] {
	return Vec2[T]{a[0] - b[0], a[1] - b[1]}
}

func (p Point2[T]) Translate(v Vec2[T]) Point2[T] {
	return Point2[T]{p[0] + v[0], p[1] + v[1]}
}

func (p Point2[T]) SubVec(v Vec2[T]) Point2[T] {
	return Point2[T]{p[0] - v[0], p[1] - v[1]}
}

func (p Point2[T]) Vec() Vec2[T] {
	return Vec2[T](p)
}

func (Point2[T]) Dim() int { return 2 }

// Origin3 returns the point (0, 0, 0).
func Origin3[T Scalar]() Point3[T] {
	return Point3[T]{}
}
