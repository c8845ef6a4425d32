package puppetview

// Frame is one acquired presentable image backing the visible window,
// not a puppet animation frame. A Frame is valid until Present returns.
// How the renderer targets the frame is a contract between the Surface
// and Renderer implementations; the viewport core only sequences them.
type Frame interface {
	// Present hands the frame to the display.
	Present() error
}

// Surface is the presentable render target backing the window.
//
// Implementations classify AcquireFrame failures by wrapping
// ErrSurfaceLost, ErrSurfaceOutdated or ErrDeviceLost.
type Surface interface {
	// Configure (re)configures the surface against the viewport. Called
	// once at startup and again after every non-degenerate resize.
	Configure(cfg ViewportConfig) error

	// AcquireFrame acquires the current presentable frame.
	AcquireFrame() (Frame, error)
}

// Renderer submits a puppet render into an acquired frame. The device
// and queue handles live inside the implementation; the viewport core
// never touches them.
type Renderer interface {
	// Resize updates the renderer's internal viewport.
	Resize(width, height uint32)

	// Render draws the puppet into the frame's view.
	Render(p Puppet, f Frame) error
}

// Puppet is the parsed scene-graph asset. Parameter values may only be
// set inside a BeginParams/EndParams bracket; EndParams is the point at
// which the model recomputes dependent state.
type Puppet interface {
	// BeginParams opens a parameter-edit bracket.
	BeginParams()

	// SetParam stages a named parameter value. It fails for unknown
	// parameter names or when called outside a bracket.
	SetParam(name string, value Vec2) error

	// EndParams closes the bracket and applies staged values.
	EndParams()
}
