package puppetview

import (
	"math"
	"testing"
)

func TestCamera_ViewMatrixOrder(t *testing.T) {
	// A world point moves into camera space first, then scales, then
	// rotates.
	c := &Camera{
		Position: V2(100, 50),
		Scale:    V2(2, 2),
		Rotation: math.Pi / 2,
	}
	// World (1, 0): camera space (-99, -50), scaled to (-198, -100),
	// rotated a quarter turn to (100, -198).
	got := c.ViewMatrix().Transform(V2(1, 0))
	want := V2(100, -198)
	if !got.Approx(want, 1e-9) {
		t.Errorf("view transform = %v, want %v", got, want)
	}
}

func TestCamera_DragMovesContentWithPointer(t *testing.T) {
	// The pan contract: setting position to the negated world delta of a
	// pointer displacement shifts every projected point by exactly that
	// displacement.
	c := &Camera{Scale: V2(0.15, 0.15)}
	world := V2(320, -47)
	before := c.ViewMatrix().Transform(world)

	drag := V2(50, 20)
	c.Position = c.Position.Sub(c.ScreenDeltaToWorld(drag))
	after := c.ViewMatrix().Transform(world)

	if !after.Sub(before).Approx(drag, 1e-9) {
		t.Errorf("content moved by %v, want %v", after.Sub(before), drag)
	}
}

func TestCamera_ScreenDeltaToWorld(t *testing.T) {
	tests := []struct {
		name    string
		camera  Camera
		delta   Vec2
		expect  Vec2
		epsilon float64
	}{
		{
			name:    "uniform scale no rotation",
			camera:  Camera{Scale: V2(0.15, 0.15)},
			delta:   V2(50, 20),
			expect:  V2(50/0.15, 20/0.15),
			epsilon: 1e-9,
		},
		{
			name:    "unit scale",
			camera:  Camera{Scale: V2(1, 1)},
			delta:   V2(-3, 7),
			expect:  V2(-3, 7),
			epsilon: 1e-12,
		},
		{
			name:    "anisotropic scale",
			camera:  Camera{Scale: V2(2, 4)},
			delta:   V2(8, 8),
			expect:  V2(4, 2),
			epsilon: 1e-12,
		},
		{
			name:    "quarter rotation",
			camera:  Camera{Scale: V2(1, 1), Rotation: math.Pi / 2},
			delta:   V2(0, 1),
			expect:  V2(1, 0),
			epsilon: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.camera.ScreenDeltaToWorld(tt.delta)
			if !got.Approx(tt.expect, tt.epsilon) {
				t.Errorf("ScreenDeltaToWorld(%v) = %v, want %v", tt.delta, got, tt.expect)
			}
		})
	}
}

func TestCamera_ScreenDeltaIgnoresPosition(t *testing.T) {
	a := Camera{Position: V2(0, 0), Scale: V2(0.5, 0.5), Rotation: 0.3}
	b := Camera{Position: V2(999, -999), Scale: V2(0.5, 0.5), Rotation: 0.3}
	delta := V2(12, -7)
	if ga, gb := a.ScreenDeltaToWorld(delta), b.ScreenDeltaToWorld(delta); !ga.Approx(gb, 1e-12) {
		t.Errorf("position leaked into delta conversion: %v vs %v", ga, gb)
	}
}

func TestCamera_DeltaRoundTrip(t *testing.T) {
	// Screen delta -> world delta -> back through the view matrix's
	// linear part must reproduce the screen delta.
	c := Camera{Position: V2(40, 40), Scale: V2(0.15, 0.3), Rotation: 0.9}
	delta := V2(50, 20)
	world := c.ScreenDeltaToWorld(delta)
	back := c.ViewMatrix().TransformVector(world)
	if !back.Approx(delta, 1e-9) {
		t.Errorf("round trip = %v, want %v", back, delta)
	}
}

func TestNewCamera_Defaults(t *testing.T) {
	c := NewCamera()
	if !c.Scale.Approx(V2(1, 1), 0) {
		t.Errorf("default scale = %v, want (1,1)", c.Scale)
	}
	if !c.Position.IsZero() || c.Rotation != 0 {
		t.Errorf("default camera not at rest: %+v", c)
	}
}
