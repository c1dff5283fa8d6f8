package mathutil

import (
	"math"

	"golang.org/x/exp/rand"
)

// Rand is the source Random draws from. *rand.Rand from x/exp/rand and
// math/rand both satisfy it.
type Rand interface {
	Int63n(n int64) int64
	Float64() float64
}

// NewRand returns a deterministic PCG-backed generator.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Random returns a value uniformly distributed over iv. Integer draws
// include both bounds; float draws cover [Lo, Hi].
func Random[T Scalar](r Rand, iv Interval[T]) T {
	if isFloat[T]() {
		lo, hi := float64(iv.Lo), float64(iv.Hi)
		return iv.Clamp(T(lo + r.Float64()*(hi-lo)))
	}
	// Offsets are taken modulo 2^64, so the span of any integer interval
	// fits even when Hi-Lo overflows T.
	span := uint64(iv.Hi) - uint64(iv.Lo)
	return T(uint64(iv.Lo) + uint64n(r, span))
}

// uint64n returns a uniform value in [0, hi].
func uint64n(r Rand, hi uint64) uint64 {
	if hi < math.MaxInt64 {
		return uint64(r.Int63n(int64(hi) + 1))
	}
	for {
		u := uint64(r.Int63n(1<<32))<<32 | uint64(r.Int63n(1<<32))
		if u <= hi {
			return u
		}
	}
}

func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

func RandomVec2[T Scalar](r Rand, iv Interval[T]) Vec2[T] {
	return Vec2[T]{Random(r, iv), Random(r, iv)}
}

func RandomVec3[T Scalar](r Rand, iv Interval[T]) Vec3[T] {
	return Vec3[T]{Random(r, iv), Random(r, iv), Random(r, iv)}
}

func RandomVec4[T Scalar](r Rand, iv Interval[T]) Vec4[T] {
	return Vec4[T]{Random(r, iv), Random(r, iv), Random(r, iv), Random(r, iv)}
}

func RandomPoint2[T Scalar](r Rand, iv Interval[T]) Point2[T] {
	return Point2[T](RandomVec2(r, iv))
}

func RandomPoint3[T Scalar](r Rand, iv Interval[T]) Point3[T] {
	return Point3[T](RandomVec3(r, iv))
}
