package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"axis aligned", NewVec3(0, 3, 0), NewVec3(0, 1, 0)},
		{"diagonal", NewVec3(1, 1, 0), NewVec3(1/math.Sqrt2, 1/math.Sqrt2, 0)},
		{"zero vector stays zero", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestVec3_ArithmeticClosure(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.MultiplyVec(b); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestVec3_GammaCorrectAndClamp(t *testing.T) {
	c := NewVec3(0.25, 4, -1).Clamp(0, 1).GammaCorrect(2.0)
	expected := NewVec3(0.5, 1, 0)
	if c.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestVec3_Lerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1.0)

	if got := white.Lerp(blue, 0); !got.Equals(white) {
		t.Errorf("t=0 should give start, got %v", got)
	}
	if got := white.Lerp(blue, 1); !got.Equals(blue) {
		t.Errorf("t=1 should give end, got %v", got)
	}
	mid := white.Lerp(blue, 0.5)
	if math.Abs(mid.X-0.75) > 1e-12 || math.Abs(mid.Y-0.85) > 1e-12 || math.Abs(mid.Z-1.0) > 1e-12 {
		t.Errorf("t=0.5 should be the midpoint, got %v", mid)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 3, 0)) {
		t.Errorf("Expected (1,3,0), got %v", got)
	}
	if got := ray.At(0); !got.Equals(ray.Origin) {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
}
