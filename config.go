package puppetview

import "github.com/gogpu/gputypes"

// PresentMode controls how rendered frames are presented to the
// display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before
	// presenting, capping frame rate to the monitor's refresh rate.
	// Eliminates tearing. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting
	// for vertical blank. May cause tearing but has the lowest latency.
	PresentModeUncapped
)

// String returns the present mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return "unknown"
	}
}

// AlphaMode controls how the surface's alpha channel composites with
// the content behind the window.
type AlphaMode int

const (
	// AlphaModePreMultiplied treats surface color channels as already
	// multiplied by alpha. Preferred when the host supports it.
	AlphaModePreMultiplied AlphaMode = iota

	// AlphaModeOpaque ignores the alpha channel entirely.
	AlphaModeOpaque

	// AlphaModePostMultiplied treats color channels as straight alpha.
	AlphaModePostMultiplied
)

// String returns the alpha mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaModePreMultiplied:
		return "premultiplied"
	case AlphaModeOpaque:
		return "opaque"
	case AlphaModePostMultiplied:
		return "postmultiplied"
	default:
		return "unknown"
	}
}

// ViewportConfig describes the presentable surface: pixel dimensions,
// texture format, present mode and alpha compositing mode.
//
// The Orchestrator owns the configuration. It is mutated only on a
// Resized occurrence and consumed immediately by Surface.Configure and
// Renderer.Resize before the next frame submission.
type ViewportConfig struct {
	Width       uint32
	Height      uint32
	Format      gputypes.TextureFormat
	PresentMode PresentMode
	AlphaMode   AlphaMode
}

// DefaultViewportConfig returns the startup configuration: BGRA8
// surface presented with vsync and premultiplied alpha.
func DefaultViewportConfig(width, height uint32) ViewportConfig {
	return ViewportConfig{
		Width:       width,
		Height:      height,
		Format:      gputypes.TextureFormatBGRA8Unorm,
		PresentMode: PresentModeVSync,
		AlphaMode:   AlphaModePreMultiplied,
	}
}

// Degenerate reports whether the configuration describes a zero-area
// surface (minimized window). A degenerate viewport is a recognized
// no-render state, not an error.
func (c ViewportConfig) Degenerate() bool {
	return c.Width == 0 || c.Height == 0
}
