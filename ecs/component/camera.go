package component

// Camera converts world units to screen pixels. The camera entity's
// Transform is the world point drawn at the centre of the screen.
type Camera struct {
	Zoom          float64
	PixelsPerUnit float64
	// Mask selects the render groups this camera draws. Zero draws nothing;
	// use MaskAll for every group.
	Mask RenderGroupMask
	// Target names the entity to follow; empty keeps the camera still.
	Target string
	// Smoothness is the fraction of the remaining distance covered per frame;
	// 0 or 1 snaps to the target.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
