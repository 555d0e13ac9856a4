package render

// Camera translates maze-text coordinates to screen coordinates.
// When the text is smaller than the view it is centered, otherwise the view
// scrolls to keep the followed point in the middle.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow positions the camera over a worldW×worldH text block so that
// (cx, cy) stays visible.
func (c *Camera) Follow(cx, cy, worldW, worldH int) {
	c.OffsetX = axisOffset(cx, worldW, c.ViewWidth)
	c.OffsetY = axisOffset(cy, worldH, c.ViewHeight)
}

func axisOffset(center, world, view int) int {
	if world <= view {
		// Negative offset centers the block in the view.
		return -(view - world) / 2
	}
	off := center - view/2
	if off < 0 {
		off = 0
	}
	if off > world-view {
		off = world - view
	}
	return off
}

// WorldToScreen converts text (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
