package core

import (
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", v1.Add(v2), NewVec3(5, 7, 9)},
		{"Subtract", v2.Subtract(v1), NewVec3(3, 3, 3)},
		{"Multiply", v1.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", v1.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"Negate", v1.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", v1.Cross(v2), NewVec3(-3, 6, -3)},
		{"MultiplyVec", v1.MultiplyVec(v2), NewVec3(4, 10, 18)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Expected dot product 32, got %f", got)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > 1e-10 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	normalized := v.Normalize()

	if math.Abs(normalized.Length()-1) > 1e-10 {
		t.Errorf("Expected unit length, got %f", normalized.Length())
	}
	if normalized != NewVec3(0.6, 0.8, 0) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", normalized)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	// The zero vector must be returned unchanged, not turned into NaNs
	normalized := Zero().Normalize()

	if normalized != Zero() {
		t.Errorf("Expected zero vector unchanged, got %v", normalized)
	}
}

func TestVec3_Reflect(t *testing.T) {
	// Incoming ray at 45 degrees onto a floor reflects upward
	v := NewVec3(1, -1, 0)
	reflected := v.Reflect(UnitY())

	if reflected != NewVec3(1, 1, 0) {
		t.Errorf("Expected (1, 1, 0), got %v", reflected)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 1)

	if clamped != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", clamped)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(Zero(), UnitX())

	if got := ray.At(5); got != NewVec3(5, 0, 0) {
		t.Errorf("Expected (5, 0, 0), got %v", got)
	}
}
