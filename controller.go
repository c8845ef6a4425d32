package puppetview

import (
	"math"
	"time"
)

// dragState records where a primary-button drag started: the screen
// position of the press and the camera position at that instant.
type dragState struct {
	anchorScreen Vec2
	anchorCamera Vec2
}

// SceneController translates raw input events into camera mutation and
// tracks elapsed animation time. It performs no rendering or I/O.
//
// The controller is bound to one Camera for its lifetime and is the
// camera's only writer. It is not safe for concurrent use; the
// orchestrator drives it from a single event queue.
type SceneController struct {
	camera *Camera

	zoomSpeed float64
	minScale  float64
	maxScale  float64

	drag *dragState

	// now is the clock source, injectable for tests.
	now     func() time.Time
	origin  time.Time
	started bool
	elapsed float64
}

// NewSceneController creates a controller bound to camera.
func NewSceneController(camera *Camera, opts ...ControllerOption) *SceneController {
	sc := &SceneController{
		camera:    camera,
		zoomSpeed: DefaultZoomSpeed,
		minScale:  DefaultMinScale,
		maxScale:  DefaultMaxScale,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Interact consumes one input event. Unmapped events, including all
// keyboard input, are deliberately no-ops: they are still forwarded
// here so future bindings (reset view, focus) have a single home.
// No event is a failure condition.
func (sc *SceneController) Interact(ev Event) {
	switch e := ev.(type) {
	case PointerDown:
		if e.Button == PointerButtonPrimary && sc.drag == nil {
			sc.drag = &dragState{
				anchorScreen: e.Pos,
				anchorCamera: sc.camera.Position,
			}
		}

	case PointerMoved:
		if sc.drag == nil {
			return
		}
		// Content follows the cursor: the camera moves opposite the
		// world-space displacement of the pointer since the press.
		screenDelta := e.Pos.Sub(sc.drag.anchorScreen)
		worldDelta := sc.camera.ScreenDeltaToWorld(screenDelta)
		sc.camera.Position = sc.drag.anchorCamera.Sub(worldDelta)

	case PointerUp:
		if e.Button == PointerButtonPrimary {
			sc.drag = nil
		}

	case Scroll:
		factor := math.Pow(1+sc.zoomSpeed, e.Delta)
		sc.camera.Scale = sc.camera.Scale.Mul(factor).Clamp(sc.minScale, sc.maxScale)
	}
}

// Dragging reports whether a primary-button drag is in progress.
func (sc *SceneController) Dragging() bool {
	return sc.drag != nil
}

// Update advances the animation clock by the wall-time delta since the
// previous call and returns the total elapsed seconds. The first call
// establishes the clock origin.
//
// Update must be called exactly once per rendered frame so elapsed-time
// semantics stay aligned with presented frames.
func (sc *SceneController) Update() float64 {
	t := sc.now()
	if !sc.started {
		sc.origin = t
		sc.started = true
	}
	sc.elapsed = t.Sub(sc.origin).Seconds()
	return sc.elapsed
}

// CurrentElapsed returns the last value computed by Update without
// advancing the clock.
func (sc *SceneController) CurrentElapsed() float64 {
	return sc.elapsed
}
