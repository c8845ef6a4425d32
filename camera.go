package puppetview

// Camera is the 2D camera over the puppet scene: a position in world
// units, a componentwise scale and a rotation in radians.
//
// The camera is created once at startup and mutated in place for the
// process lifetime. Only the SceneController writes to it; the render
// submission step reads it. Scale components are kept strictly positive
// by the controller's zoom clamping.
//
// Sign convention: ViewMatrix maps world to screen with no Y flip —
// screen +Y (down) corresponds to world +Y. Position is subtracted in
// world space before rotation and scale, so moving the camera position
// opposite a pointer displacement moves the content with the pointer.
// ScreenDeltaToWorld is the exact inverse for displacements.
type Camera struct {
	Position Vec2
	Scale    Vec2
	Rotation float64
}

// NewCamera returns a camera at the origin with unit scale and no
// rotation.
func NewCamera() *Camera {
	return &Camera{Scale: V2(1, 1)}
}

// ViewMatrix builds the world-to-screen transform from the camera's
// position, scale and rotation: translate by -position (camera space),
// then scale, then rotate.
func (c *Camera) ViewMatrix() Matrix {
	return Rotate(c.Rotation).
		Multiply(Scale(c.Scale.X, c.Scale.Y)).
		Multiply(Translate(-c.Position.X, -c.Position.Y))
}

// ScreenDeltaToWorld converts a screen-space pixel displacement into
// world units under the current scale and rotation. Translation does
// not apply to displacements, so the camera position is irrelevant.
func (c *Camera) ScreenDeltaToWorld(delta Vec2) Vec2 {
	unrotated := delta.Rotate(-c.Rotation)
	return unrotated.DivV(c.Scale)
}
