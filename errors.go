package puppetview

import "errors"

// Frame acquisition errors. Surface implementations classify their
// backend's failures by wrapping one of these sentinels so the
// Orchestrator can pick between reconfigure-and-skip and fatal exit
// with errors.Is.
var (
	// ErrSurfaceLost indicates the surface was lost and must be
	// reconfigured before the next frame. Recoverable: the affected
	// frame is skipped.
	ErrSurfaceLost = errors.New("puppetview: surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the
	// window, typically during a resize race. Recoverable: the surface
	// is reconfigured and the affected frame skipped.
	ErrSurfaceOutdated = errors.New("puppetview: surface outdated")

	// ErrDeviceLost indicates the GPU device itself is gone. Fatal:
	// the orchestrator reports the error and requests exit.
	ErrDeviceLost = errors.New("puppetview: device lost")
)

// recoverableAcquire reports whether a frame acquisition error can be
// handled by reconfiguring the surface and skipping one frame.
func recoverableAcquire(err error) bool {
	return errors.Is(err, ErrSurfaceLost) || errors.Is(err, ErrSurfaceOutdated)
}
