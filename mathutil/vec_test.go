package mathutil

import (
	"math"
	"testing"
)

func TestMinElementVec3(t *testing.T) {
	r := NewRand(3)
	iv := NewInterval(-1000, 1000)
	for i := 0; i < 1000; i++ {
		a := RandomVec3(r, iv)
		// explicit linear scan
		e := a[0]
		for j := 1; j < a.Dim(); j++ {
			if a[j] < e {
				e = a[j]
			}
		}
		if got := a.MinElement(); got != e {
			t.Fatalf("MinElement(%v) = %d, want %d", a, got, e)
		}
	}
}

func TestMaxElement(t *testing.T) {
	if got := (Vec2[int]{-3, 7}).MaxElement(); got != 7 {
		t.Fatalf("Vec2 max = %d, want 7", got)
	}
	if got := (Vec4[float32]{1, -2, 9, 3}).MaxElement(); got != 9 {
		t.Fatalf("Vec4 max = %v, want 9", got)
	}
	if got := (Vec4[float32]{1, -2, 9, 3}).MinElement(); got != -2 {
		t.Fatalf("Vec4 min = %v, want -2", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3[int]{1, 2, 3}
	b := Vec3[int]{4, 5, 6}

	if got := a.Add(b); got != (Vec3[int]{5, 7, 9}) {
		t.Fatalf("a + b = %v", got)
	}
	if got := a.Sub(b); got != (Vec3[int]{-3, -3, -3}) {
		t.Fatalf("a - b = %v", got)
	}
	if got := a.Scale(2); got != (Vec3[int]{2, 4, 6}) {
		t.Fatalf("2a = %v", got)
	}
	if got := a.Mul(b); got != (Vec3[int]{4, 10, 18}) {
		t.Fatalf("a * b = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("a · b = %d, want 32", got)
	}
	if got := a.Add(a.Neg()); got != (Vec3[int]{}) {
		t.Fatalf("a + -a = %v, want zero", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3[float64]{1, 0, 0}
	y := Vec3[float64]{0, 1, 0}
	z := Vec3[float64]{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Fatalf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Fatalf("y × x = %v, want %v", got, z.Neg())
	}
	a := Vec3[float64]{1, 2, 3}
	if got := a.Cross(a); got != (Vec3[float64]{}) {
		t.Fatalf("a × a = %v, want zero", got)
	}
	if got := a.Cross(a.Scale(-2)); got != (Vec3[float64]{}) {
		t.Fatalf("a × -2a = %v, want zero", got)
	}

	r := NewRand(4)
	iv := NewInterval(-10.0, 10.0)
	for i := 0; i < 200; i++ {
		u := RandomVec3(r, iv)
		v := RandomVec3(r, iv)
		c := u.Cross(v)
		if d := c.Dot(u); math.Abs(d) > 1e-9 {
			t.Fatalf("(u × v) · u = %v, want 0", d)
		}
		if d := c.Dot(v); math.Abs(d) > 1e-9 {
			t.Fatalf("(u × v) · v = %v, want 0", d)
		}
	}
}

func TestNormalize(t *testing.T) {
	n, ok := (Vec3[float32]{3, 0, 4}).Normalize()
	if !ok {
		t.Fatal("Normalize reported zero length")
	}
	if !n.ApproxEqual(Vec3[float32]{0.6, 0, 0.8}, 1e-6) {
		t.Fatalf("Normalize = %v, want [0.6 0 0.8]", n)
	}
	if l := n.Length(); math.Abs(float64(l)-1) > 1e-6 {
		t.Fatalf("|n| = %v, want 1", l)
	}

	z, ok := (Vec3[float32]{}).Normalize()
	if ok {
		t.Fatal("Normalize of zero vector reported success")
	}
	if z != (Vec3[float32]{}) {
		t.Fatalf("Normalize of zero = %v, want zero", z)
	}
	if _, ok := (Vec2[float64]{}).Normalize(); ok {
		t.Fatal("Vec2 zero normalized")
	}
	if _, ok := (Vec4[float64]{}).Normalize(); ok {
		t.Fatal("Vec4 zero normalized")
	}
}

func TestLerp(t *testing.T) {
	a := Vec3[float64]{0.1, 0.2, 0.3}
	b := Vec3[float64]{10, 20, 30}

	cases := []struct {
		t    float64
		want Vec3[float64]
	}{
		{-1, a},
		{0, a},
		{1, b},
		{2, b},
	}
	for _, c := range cases {
		if got := a.Lerp(b, c.t); got != c.want {
			t.Errorf("Lerp(t=%v) = %v, want %v", c.t, got, c.want)
		}
	}

	mid := a.Lerp(b, 0.5)
	if !mid.ApproxEqual(Vec3[float64]{5.05, 10.1, 15.15}, 1e-12) {
		t.Fatalf("Lerp(0.5) = %v", mid)
	}
	if got := (Vec2[float64]{0, 0}).Lerp(Vec2[float64]{2, 4}, 0.25); got != (Vec2[float64]{0.5, 1}) {
		t.Fatalf("Vec2 Lerp = %v", got)
	}
}

func TestLengthFloat32(t *testing.T) {
	v := Vec4[float32]{1, 1, 1, 1}
	if got := v.Length(); got != 2 {
		t.Fatalf("|v| = %v, want 2", got)
	}
	if got := (Vec2[int]{3, 4}).Length(); got != 5 {
		t.Fatalf("|(3,4)| = %d, want 5", got)
	}
}

func TestHomogenize(t *testing.T) {
	p, ok := (Vec4[float64]{2, 4, 6, 2}).Homogenize()
	if !ok || p != (Vec3[float64]{1, 2, 3}) {
		t.Fatalf("Homogenize = %v, %v", p, ok)
	}
	if _, ok := (Vec4[float64]{1, 1, 1, 0}).Homogenize(); ok {
		t.Fatal("Homogenize accepted w = 0")
	}
	if got := (Vec3[int]{1, 2, 3}).Extend(1).XYZ(); got != (Vec3[int]{1, 2, 3}) {
		t.Fatalf("Extend/XYZ = %v", got)
	}
}
