package mathutil

import (
	"fmt"
	"math"
)

// Degrees and Radians tag an Angle with its unit.
type (
	Degrees struct{}
	Radians struct{}
)

// Unit is the set of angle units.
type Unit interface {
	Degrees | Radians
}

// Angle is a scalar tagged at compile time with its unit so that degrees
// can never be passed where radians are expected.
type Angle[T Float, U Unit] struct {
	v T
}

// Deg returns an angle of v degrees.
func Deg[T Float](v T) Angle[T, Degrees] {
	return Angle[T, Degrees]{v}
}

// Rad returns an angle of v radians.
func Rad[T Float](v T) Angle[T, Radians] {
	return Angle[T, Radians]{v}
}

func isDegrees[U Unit]() bool {
	var u U
	_, ok := any(u).(Degrees)
	return ok
}

// Value returns the raw scalar in the angle's own unit.
func (a Angle[T, U]) Value() T {
	return a.v
}

// Radians converts the angle to radians.
func (a Angle[T, U]) Radians() Angle[T, Radians] {
	if isDegrees[U]() {
		return Rad(Deg2Rad(a.v))
	}
	return Rad(a.v)
}

// Degrees converts the angle to degrees.
func (a Angle[T, U]) Degrees() Angle[T, Degrees] {
	if isDegrees[U]() {
		return Deg(a.v)
	}
	return Deg(Rad2Deg(a.v))
}

func (a Angle[T, U]) Add(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{a.v + b.v}
}

func (a Angle[T, U]) Sub(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{a.v - b.v}
}

func (a Angle[T, U]) Neg() Angle[T, U] {
	return Angle[T, U]{-a.v}
}

func (a Angle[T, U]) Sin() T { return sin(a.Radians().v) }
func (a Angle[T, U]) Cos() T { return cos(a.Radians().v) }
func (a Angle[T, U]) Tan() T { return tan(a.Radians().v) }

// Normalize wraps the angle into [0, 360) degrees or [0, 2π) radians.
func (a Angle[T, U]) Normalize() Angle[T, U] {
	full := fullTurn[U]()
	d := math.Mod(float64(a.v), full)
	if d < 0 {
		d += full
	}
	// Narrowing to float32 can round a value just below a full turn up to it.
	if r := T(d); r < T(full) {
		return Angle[T, U]{r}
	}
	return Angle[T, U]{0}
}

func (a Angle[T, U]) String() string {
	if isDegrees[U]() {
		return fmt.Sprintf("%g°", float64(a.v))
	}
	return fmt.Sprintf("%grad", float64(a.v))
}

func fullTurn[U Unit]() float64 {
	if isDegrees[U]() {
		return 360
	}
	return 2 * math.Pi
}

// AngleDist returns the shortest angular distance between a and b,
// in [0, 180] degrees or [0, π] radians.
func AngleDist[T Float, U Unit](a, b Angle[T, U]) Angle[T, U] {
	full := fullTurn[U]()
	d := math.Mod(float64(a.v-b.v), full)
	if d < 0 {
		d += full
	}
	if d > full/2 {
		return Angle[T, U]{T(full - d)}
	}
	return Angle[T, U]{T(d)}
}
