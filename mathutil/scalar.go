package mathutil

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types vectors, points and matrices accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is the set of component types that support angles and projections.
type Float interface {
	constraints.Float
}

// Deg2Rad converts degrees to radians.
func Deg2Rad[T Float](d T) T {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg[T Float](r T) T {
	return r * 180 / math.Pi
}

// Clamp limits x to [lo, hi].
func Clamp[T Scalar](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01[T Scalar](x T) T {
	return Clamp(x, 0, 1)
}

// Sqrt returns the square root of x. float32 stays in single precision.
func Sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sin(f))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Cos(f))
	}
	return T(math.Cos(float64(x)))
}

func tan[T Float](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Tan(f))
	}
	return T(math.Tan(float64(x)))
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
