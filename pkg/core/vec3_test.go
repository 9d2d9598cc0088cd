package core

import (
	"math"
	"testing"
)

func TestVec3_BasicArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	const tolerance = 1e-9
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if v.Subtract(NewVec3(0.6, 0.8, 0)).Length() > tolerance {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// Zero vector stays zero rather than producing NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_NormalizeOr(t *testing.T) {
	fallback := NewVec3(0, 0, 1)

	if got := NewVec3(0, 0, 0).NormalizeOr(fallback); got != fallback {
		t.Errorf("Expected fallback %v for zero vector, got %v", fallback, got)
	}
	if got := NewVec3(1e-15, 0, 0).NormalizeOr(fallback); got != fallback {
		t.Errorf("Expected fallback %v for near-zero vector, got %v", fallback, got)
	}
	if got := NewVec3(0, 2, 0).NormalizeOr(fallback); got != NewVec3(0, 1, 0) {
		t.Errorf("Expected (0,1,0), got %v", got)
	}
}

func TestVec3_GammaRoundTrip(t *testing.T) {
	// (c^(1/2.2))^2.2 should recover c for colors in [0,1]
	colors := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 1, 1),
		NewVec3(0.5, 0.25, 0.75),
		NewVec3(0.01, 0.99, 0.5),
	}

	const tolerance = 1e-9
	for _, c := range colors {
		corrected := c.GammaCorrect(2.2)
		restored := corrected.GammaCorrect(1.0 / 2.2)
		if restored.Subtract(c).Length() > tolerance {
			t.Errorf("Gamma round trip failed for %v: got %v", c, restored)
		}
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(1, 2, 3)

	const tolerance = 1e-9
	if got := a.Lerp(b, 0); got.Subtract(a).Length() > tolerance {
		t.Errorf("Lerp(0): expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got.Subtract(b).Length() > tolerance {
		t.Errorf("Lerp(1): expected %v, got %v", b, got)
	}
	if got := a.Lerp(b, 0.5); got.Subtract(NewVec3(0.5, 1, 1.5)).Length() > tolerance {
		t.Errorf("Lerp(0.5): expected (0.5,1,1.5), got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, -2.35), NewVec3(0, 0, 1))

	if got := ray.At(2.35); got != NewVec3(0, 0, 0) {
		t.Errorf("Expected origin, got %v", got)
	}
}
