package design

// The interaction controller is the event-loop half of the editor: it owns
// the active drag/resize gesture and turns raw pointer coordinates into
// session mutations. Container dimensions are passed in explicitly rather
// than measured from a live UI tree, so the whole state machine runs under
// test without a rendering environment.

// ResizeSensitivity converts horizontal pointer pixels into scale delta
// during a resize gesture.
const ResizeSensitivity = 0.01

// ContainerSize is the pixel size of one side's printable container as
// currently laid out by the host UI.
type ContainerSize struct {
	Width  float64
	Height float64
}

type gestureState int

const (
	stateIdle gestureState = iota
	stateDragging
	stateResizing
)

// Controller tracks at most one active gesture against a session. All
// pointer events are expected in arrival order from a single event loop;
// the controller does not lock.
type Controller struct {
	session    *Session
	containers map[Side]ContainerSize

	state    gestureState
	activeID string
	anchorX  float64
	anchorY  float64
}

// NewController creates a controller for the session. Container sizes may
// be provided up front or set later as the host lays out.
func NewController(session *Session, containers map[Side]ContainerSize) *Controller {
	c := &Controller{
		session:    session,
		containers: map[Side]ContainerSize{},
	}
	for side, size := range containers {
		c.containers[side] = size
	}
	return c
}

// SetContainerSize records the current pixel size of one side's printable
// container.
func (c *Controller) SetContainerSize(side Side, size ContainerSize) {
	c.containers[side] = size
}

// Select marks a placement as selected without starting a gesture.
func (c *Controller) Select(placementID string) {
	c.session.SetSelected(placementID)
}

// BeginDrag starts a move gesture on a placement, anchored at the current
// pointer position. Ignored while another gesture is active or when the
// placement does not exist.
func (c *Controller) BeginDrag(placementID string, pointerX, pointerY float64) {
	c.begin(stateDragging, placementID, pointerX, pointerY)
}

// BeginResize starts a resize gesture on a placement. Same rules as
// BeginDrag.
func (c *Controller) BeginResize(placementID string, pointerX, pointerY float64) {
	c.begin(stateResizing, placementID, pointerX, pointerY)
}

func (c *Controller) begin(next gestureState, placementID string, pointerX, pointerY float64) {
	if c.state != stateIdle {
		return
	}
	if c.session.PlacementByID(placementID) == nil {
		return
	}
	c.state = next
	c.activeID = placementID
	c.anchorX = pointerX
	c.anchorY = pointerY
	c.session.SetSelected(placementID)
}

// PointerMove feeds the next pointer position into the active gesture.
// Deltas are computed against the previous event and the anchor is reset
// every time, so over-long drags accumulate through clamping instead of
// jumping when the pointer comes back in range.
func (c *Controller) PointerMove(pointerX, pointerY float64) {
	if c.state == stateIdle {
		return
	}

	deltaX := pointerX - c.anchorX
	deltaY := pointerY - c.anchorY
	c.anchorX = pointerX
	c.anchorY = pointerY

	p := c.session.PlacementByID(c.activeID)
	if p == nil {
		// Placement vanished mid-gesture (e.g. cascade removal).
		c.PointerUp()
		return
	}

	switch c.state {
	case stateDragging:
		// A placement is pinned to the side it was created on, so the
		// gesture always measures against that side's own container.
		size := c.containers[p.Side]
		dx, okX := PixelDeltaToPercent(deltaX, size.Width)
		dy, okY := PixelDeltaToPercent(deltaY, size.Height)
		if !okX || !okY {
			return
		}
		c.session.UpdatePosition(p.ID, dx, dy)
	case stateResizing:
		c.session.UpdateScale(p.ID, deltaX*ResizeSensitivity)
	}
}

// PointerUp ends the active gesture unconditionally, wherever the release
// happened.
func (c *Controller) PointerUp() {
	c.state = stateIdle
	c.activeID = ""
}

// Dragging reports the placement id of an active move gesture, or "".
func (c *Controller) Dragging() string {
	if c.state == stateDragging {
		return c.activeID
	}
	return ""
}

// Resizing reports the placement id of an active resize gesture, or "".
func (c *Controller) Resizing() string {
	if c.state == stateResizing {
		return c.activeID
	}
	return ""
}
