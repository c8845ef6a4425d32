package puppetview

import "time"

// Controller defaults. Scale bounds keep the camera zoom finite and
// strictly positive no matter how much scroll input accumulates.
const (
	DefaultZoomSpeed = 0.5
	DefaultMinScale  = 0.01
	DefaultMaxScale  = 10.0
)

// ControllerOption configures a SceneController during creation.
//
// Example:
//
//	ctrl := puppetview.NewSceneController(camera,
//	    puppetview.WithZoomSpeed(0.1),
//	    puppetview.WithScaleBounds(0.05, 4))
type ControllerOption func(*SceneController)

// WithZoomSpeed sets the zoom speed: one scroll notch multiplies the
// camera scale by (1 + speed).
func WithZoomSpeed(speed float64) ControllerOption {
	return func(sc *SceneController) {
		sc.zoomSpeed = speed
	}
}

// WithScaleBounds sets the inclusive clamp range for camera scale
// components. min must be strictly positive; values are ignored when
// the range is empty or non-positive.
func WithScaleBounds(min, max float64) ControllerOption {
	return func(sc *SceneController) {
		if min <= 0 || max < min {
			return
		}
		sc.minScale = min
		sc.maxScale = max
	}
}

// WithClock sets the controller's time source. Tests use this to drive
// the animation clock deterministically.
func WithClock(now func() time.Time) ControllerOption {
	return func(sc *SceneController) {
		if now != nil {
			sc.now = now
		}
	}
}

// OrchestratorOption configures an Orchestrator during creation.
type OrchestratorOption func(*Orchestrator)

// WithAnimator installs the per-frame animation hook. It runs inside
// the parameter-edit bracket with the elapsed time from the clock
// update, once per frame pipeline. The default is no animator: the
// bracket still opens and closes each frame as the model contract
// requires, but no parameter is driven.
//
// Example (head sway):
//
//	puppetview.WithAnimator(func(t float64, p puppetview.Puppet) {
//	    _ = p.SetParam("Head:: Yaw-Pitch", puppetview.V2(math.Cos(t), math.Sin(t)))
//	})
func WithAnimator(fn func(elapsed float64, p Puppet)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.animate = fn
	}
}
