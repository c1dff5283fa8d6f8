package mathutil

import "fmt"

// Interval is the closed range [Lo, Hi].
type Interval[T Scalar] struct {
	Lo, Hi T
}

// NewInterval returns [lo, hi]. It panics if lo > hi.
func NewInterval[T Scalar](lo, hi T) Interval[T] {
	if lo > hi {
		panic(fmt.Sprintf("mathutil: interval lower bound %v exceeds upper bound %v", lo, hi))
	}
	return Interval[T]{Lo: lo, Hi: hi}
}

func (iv Interval[T]) Contains(x T) bool {
	return iv.Lo <= x && x <= iv.Hi
}

func (iv Interval[T]) Clamp(x T) T {
	return Clamp(x, iv.Lo, iv.Hi)
}

func (iv Interval[T]) Length() T {
	return iv.Hi - iv.Lo
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Lo, iv.Hi)
}
