package puppetview

// PointerButton identifies a pointer (mouse) button.
type PointerButton int

const (
	// PointerButtonPrimary is the primary button (usually left). Only
	// the primary button starts and ends camera drags.
	PointerButtonPrimary PointerButton = iota

	// PointerButtonSecondary is the secondary button (usually right).
	PointerButtonSecondary

	// PointerButtonMiddle is the middle button or wheel click.
	PointerButtonMiddle
)

// Key identifies a keyboard key. The set is intentionally small: the
// viewport only binds Escape, and forwards everything else to the
// controller for future bindings.
type Key int

const (
	// KeyUnknown is any key the host adapter does not map.
	KeyUnknown Key = iota

	// KeyEscape requests loop termination when pressed.
	KeyEscape

	// KeySpace is reserved for future bindings (e.g. reset view).
	KeySpace
)

// Occurrence is anything the host pump feeds into Orchestrator.Step:
// window input events, resize and close notifications, the redraw
// pulse and the events-drained pulse.
type Occurrence interface {
	isOccurrence()
}

// Event is a window input event. Every Event is also an Occurrence;
// the Orchestrator forwards events it does not consume itself to the
// SceneController.
type Event interface {
	Occurrence
	isEvent()
}

// PointerDown reports a pointer button press at a screen position.
type PointerDown struct {
	Pos    Vec2
	Button PointerButton
}

// PointerUp reports a pointer button release at a screen position.
type PointerUp struct {
	Pos    Vec2
	Button PointerButton
}

// PointerMoved reports the pointer's new screen position.
type PointerMoved struct {
	Pos Vec2
}

// Scroll reports wheel movement in notches. Positive zooms in.
type Scroll struct {
	Delta float64
}

// KeyDown reports a key press.
type KeyDown struct {
	Key Key
}

// KeyUp reports a key release.
type KeyUp struct {
	Key Key
}

// CloseRequested reports that the host window was asked to close.
type CloseRequested struct{}

// Resized reports new window dimensions in pixels. A zero width or
// height marks a degenerate (minimized) window: the orchestrator
// suspends frame acquisition until a non-zero resize arrives.
type Resized struct {
	Width  uint32
	Height uint32
}

// RedrawRequested is the host's redraw pulse; it triggers exactly one
// frame pipeline run.
type RedrawRequested struct{}

// EventsDrained is the host's all-events-processed pulse. The
// orchestrator answers it with a redraw request, keeping the loop
// continuous rather than demand-driven.
type EventsDrained struct{}

func (PointerDown) isEvent()  {}
func (PointerUp) isEvent()    {}
func (PointerMoved) isEvent() {}
func (Scroll) isEvent()       {}
func (KeyDown) isEvent()      {}
func (KeyUp) isEvent()        {}

func (PointerDown) isOccurrence()     {}
func (PointerUp) isOccurrence()       {}
func (PointerMoved) isOccurrence()    {}
func (Scroll) isOccurrence()          {}
func (KeyDown) isOccurrence()         {}
func (KeyUp) isOccurrence()           {}
func (CloseRequested) isOccurrence()  {}
func (Resized) isOccurrence()         {}
func (RedrawRequested) isOccurrence() {}
func (EventsDrained) isOccurrence()   {}
