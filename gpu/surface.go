// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/puppetview"
)

// HostSurface implements the puppetview.Surface contract for hosts
// that own the swapchain themselves, such as gogpu.App. The host hands
// it a DrawTarget at the start of each draw callback; AcquireFrame
// outside that window reports the surface as outdated, which the
// orchestrator recovers from by reconfiguring and skipping the frame.
type HostSurface struct {
	target DrawTarget
	cfg    puppetview.ViewportConfig
}

var _ puppetview.Surface = (*HostSurface)(nil)

// NewHostSurface returns an unconfigured surface with no active frame.
func NewHostSurface() *HostSurface {
	return &HostSurface{}
}

// Configure records the viewport geometry. The host owns the actual
// swapchain, so there is nothing to rebuild here; the recorded config
// is what AcquireFrame-recovery reconfigures against.
func (s *HostSurface) Configure(cfg puppetview.ViewportConfig) error {
	s.cfg = cfg
	puppetview.Logger().Debug("surface configured",
		"width", cfg.Width, "height", cfg.Height,
		"present", cfg.PresentMode.String(), "alpha", cfg.AlphaMode.String())
	return nil
}

// Config returns the last configured viewport.
func (s *HostSurface) Config() puppetview.ViewportConfig {
	return s.cfg
}

// BeginHostFrame installs the draw target for the current host draw
// callback. Pair with EndHostFrame.
func (s *HostSurface) BeginHostFrame(target DrawTarget) {
	s.target = target
}

// EndHostFrame clears the active draw target.
func (s *HostSurface) EndHostFrame() {
	s.target = nil
}

// AcquireFrame returns the frame backed by the active host draw
// target, or an ErrSurfaceOutdated-wrapped error when called outside a
// host draw callback.
func (s *HostSurface) AcquireFrame() (puppetview.Frame, error) {
	if s.target == nil {
		return nil, fmt.Errorf("gpu: no active host frame: %w", puppetview.ErrSurfaceOutdated)
	}
	return &Frame{target: s.target}, nil
}

// Frame is one acquired host frame.
type Frame struct {
	target DrawTarget
}

var _ puppetview.Frame = (*Frame)(nil)

// Target returns the draw target the renderer submits into.
func (f *Frame) Target() DrawTarget {
	return f.target
}

// Present is a no-op: the host presents when its draw callback
// returns.
func (f *Frame) Present() error {
	return nil
}
