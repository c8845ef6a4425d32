package puppetview

import "fmt"

// State is the orchestrator's loop state.
type State int

const (
	// StateRunning is the steady state: events are dispatched and
	// frames submitted.
	StateRunning State = iota

	// StateExitRequested is terminal. No transition leads back to
	// StateRunning and no further frame pipeline executes.
	StateExitRequested
)

// Directive tells the host pump what to do after a Step.
type Directive int

const (
	// DirectiveNone requires no host action.
	DirectiveNone Directive = iota

	// DirectiveRedraw asks the host to schedule one redraw pulse.
	DirectiveRedraw

	// DirectiveExit asks the host to stop pumping and shut down.
	DirectiveExit
)

// Orchestrator sequences the viewport's steady state: input dispatch,
// clock update, the parameter-edit bracket, frame acquisition, render
// submission and present. It owns the viewport configuration and the
// loop state, and holds the camera, controller and collaborators for
// the process lifetime.
//
// Step is fully synchronous; no step suspends, so a frame pipeline runs
// atomically with respect to input. The host adapter pumps one
// occurrence at a time from a single event queue, which is what
// guarantees that a Resized occurrence takes effect before any frame
// pipeline that follows it.
type Orchestrator struct {
	state State
	cfg   ViewportConfig

	// degenerate suppresses frame acquisition while the window has zero
	// area. Set by a zero-sized Resized, cleared by the next real one.
	degenerate bool

	camera   *Camera
	ctrl     *SceneController
	surface  Surface
	renderer Renderer
	puppet   Puppet

	// animate is the per-frame extension point, see WithAnimator.
	animate func(elapsed float64, p Puppet)
}

// NewOrchestrator wires the viewport core to its collaborators. The
// camera, controller and collaborators must be ready (startup phase
// complete) before the first Step.
func NewOrchestrator(camera *Camera, ctrl *SceneController, surface Surface,
	renderer Renderer, puppet Puppet, cfg ViewportConfig, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		state:    StateRunning,
		cfg:      cfg,
		camera:   camera,
		ctrl:     ctrl,
		surface:  surface,
		renderer: renderer,
		puppet:   puppet,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current loop state.
func (o *Orchestrator) State() State {
	return o.state
}

// Config returns the current viewport configuration.
func (o *Orchestrator) Config() ViewportConfig {
	return o.cfg
}

// Step processes one host occurrence and returns a directive for the
// host pump. Once the state is StateExitRequested every occurrence
// yields DirectiveExit and nothing else runs; cancellation is
// cooperative, checked once per pumped occurrence.
//
// Recoverable frame errors are handled internally: the surface is
// reconfigured, the frame skipped, and a warning logged. A non-nil
// error with a directive other than DirectiveExit is diagnostic only;
// the loop keeps running.
func (o *Orchestrator) Step(occ Occurrence) (Directive, error) {
	if o.state == StateExitRequested {
		return DirectiveExit, nil
	}

	switch e := occ.(type) {
	case CloseRequested:
		o.state = StateExitRequested
		Logger().Info("close requested, exiting")
		return DirectiveExit, nil

	case KeyDown:
		if e.Key == KeyEscape {
			o.state = StateExitRequested
			Logger().Info("escape pressed, exiting")
			return DirectiveExit, nil
		}
		o.ctrl.Interact(e)
		return DirectiveNone, nil

	case Resized:
		return o.handleResize(e)

	case RedrawRequested:
		return o.runFrame()

	case EventsDrained:
		// Continuous render loop: a redraw pulse only fires once unless
		// re-requested after each drained batch.
		return DirectiveRedraw, nil

	case Event:
		o.ctrl.Interact(e)
		return DirectiveNone, nil
	}

	return DirectiveNone, nil
}

// handleResize applies new window dimensions: store, reconfigure the
// surface, resize the renderer viewport, then request one redraw so the
// next frame is submitted at the new size. A zero-area resize skips
// surface reconfiguration entirely and suspends frame acquisition
// instead of configuring a zero-sized surface.
func (o *Orchestrator) handleResize(e Resized) (Directive, error) {
	if e.Width == 0 || e.Height == 0 {
		o.degenerate = true
		Logger().Debug("degenerate resize, rendering suspended",
			"width", e.Width, "height", e.Height)
		return DirectiveNone, nil
	}

	o.degenerate = false
	o.cfg.Width = e.Width
	o.cfg.Height = e.Height

	if err := o.surface.Configure(o.cfg); err != nil {
		return DirectiveNone, fmt.Errorf("surface reconfigure: %w", err)
	}
	o.renderer.Resize(e.Width, e.Height)

	Logger().Debug("viewport resized", "width", e.Width, "height", e.Height)
	return DirectiveRedraw, nil
}

// runFrame executes the frame pipeline, in this exact order: advance
// the clock, bracket parameter edits around the animation hook, acquire
// the current frame, submit the render, present.
func (o *Orchestrator) runFrame() (Directive, error) {
	elapsed := o.ctrl.Update()

	o.puppet.BeginParams()
	if o.animate != nil {
		o.animate(elapsed, o.puppet)
	}
	o.puppet.EndParams()

	if o.degenerate {
		// Minimized window: the clock and parameter bracket still ran,
		// but nothing is acquired or submitted.
		return DirectiveNone, nil
	}

	frame, err := o.surface.AcquireFrame()
	if err != nil {
		return o.handleAcquireError(err)
	}

	if err := o.renderer.Render(o.puppet, frame); err != nil {
		return DirectiveNone, fmt.Errorf("render submission: %w", err)
	}
	if err := frame.Present(); err != nil {
		return DirectiveNone, fmt.Errorf("present: %w", err)
	}
	return DirectiveNone, nil
}

// handleAcquireError applies the frame acquisition taxonomy: lost or
// outdated surfaces are reconfigured and the frame skipped; device loss
// is fatal and transitions to exit.
func (o *Orchestrator) handleAcquireError(err error) (Directive, error) {
	if recoverableAcquire(err) {
		Logger().Warn("frame acquisition failed, reconfiguring surface", "err", err)
		if cerr := o.surface.Configure(o.cfg); cerr != nil {
			return DirectiveNone, fmt.Errorf("surface reconfigure after %v: %w", err, cerr)
		}
		return DirectiveNone, nil
	}

	o.state = StateExitRequested
	return DirectiveExit, fmt.Errorf("frame acquisition: %w", err)
}
