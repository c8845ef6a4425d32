package puppetview

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec2
		expect Vec2
	}{
		{"add", V2(1, 2).Add(V2(3, 4)), V2(4, 6)},
		{"sub", V2(5, 7).Sub(V2(2, 3)), V2(3, 4)},
		{"mul", V2(1, 2).Mul(3), V2(3, 6)},
		{"mulv", V2(2, 3).MulV(V2(4, 5)), V2(8, 15)},
		{"divv", V2(8, 15).DivV(V2(4, 5)), V2(2, 3)},
		{"neg", V2(1, -2).Neg(), V2(-1, 2)},
		{"splat", Splat(0.15), V2(0.15, 0.15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.expect, 1e-10) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		angle  float64
		expect Vec2
	}{
		{"zero angle", V2(1, 0), 0, V2(1, 0)},
		{"quarter turn", V2(1, 0), math.Pi / 2, V2(0, 1)},
		{"half turn", V2(1, 0), math.Pi, V2(-1, 0)},
		{"negative quarter", V2(0, 1), -math.Pi / 2, V2(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Rotate(tt.angle)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.angle, result, tt.expect)
			}
		})
	}
}

func TestVec2_RotateInverse(t *testing.T) {
	// Rotating by angle then -angle must restore the vector.
	v := V2(3.7, -1.2)
	for _, angle := range []float64{0.1, 1.0, math.Pi / 3, 2.5} {
		back := v.Rotate(angle).Rotate(-angle)
		if !back.Approx(v, 1e-9) {
			t.Errorf("rotate round trip at %v: got %v, want %v", angle, back, v)
		}
	}
}

func TestVec2_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		lo, hi float64
		expect Vec2
	}{
		{"inside", V2(1, 2), 0, 10, V2(1, 2)},
		{"above", V2(15, 3), 0, 10, V2(10, 3)},
		{"below", V2(-1, 0.5), 0.01, 10, V2(0.01, 0.5)},
		{"both", V2(-5, 20), 0.01, 10, V2(0.01, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Clamp(tt.lo, tt.hi)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Clamp(%v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, result, tt.expect)
			}
		})
	}
}

func TestVec2_IsZero(t *testing.T) {
	if !V2(0, 0).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if V2(0, 1e-12).IsZero() {
		t.Error("non-zero vector should not report IsZero")
	}
}
