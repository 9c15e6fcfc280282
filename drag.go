package tilestack

// Draggable is a target a DragController can pick and move. *Sprite and
// *CompositeNode both satisfy it.
type Draggable interface {
	Position() (x, y float64)
	Bounds() Bounds
	Update(u TransformUpdate)
}

// DragState is the state of a DragController.
type DragState uint8

const (
	DragIdle   DragState = iota // waiting for a press inside the target
	DragActive                  // moving the target with the pointer
)

// String returns the state name.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragActive:
		return "dragging"
	default:
		return "unknown"
	}
}

// DragController moves one target by pointer deltas between a press inside
// the target's bounds and the next release. It is reusable across any number
// of press/release cycles and never ends on its own: a missing release keeps
// it active.
//
// Movement is applied as raw deltas. The offset between the pointer and the
// target origin at press time is never recomputed.
type DragController struct {
	target Draggable
	state  DragState

	button    MouseButton
	anyButton bool

	// OnDragStart and OnDragEnd are optional hooks fired on state changes.
	OnDragStart func(*DragController)
	OnDragEnd   func(*DragController)
}

// NewDragController creates an idle controller for target. Any mouse button
// starts a drag until SetButton is called.
func NewDragController(target Draggable) *DragController {
	if target == nil {
		panic("tilestack: drag target must not be nil")
	}
	return &DragController{target: target, anyButton: true}
}

// Target returns the dragged target.
func (c *DragController) Target() Draggable { return c.target }

// State returns the current state.
func (c *DragController) State() DragState { return c.state }

// Active reports whether a drag is in progress.
func (c *DragController) Active() bool { return c.state == DragActive }

// SetButton restricts drag starts to presses of b.
func (c *DragController) SetButton(b MouseButton) {
	c.button = b
	c.anyButton = false
}

// Press handles a pointer press at (x, y). While idle, the controller becomes
// active if the point lies strictly inside the target's bounds. A press while
// already active is ignored. Reports whether this press started a drag.
func (c *DragController) Press(x, y float64) bool {
	if c.state != DragIdle {
		return false
	}
	if !c.target.Bounds().Contains(x, y) {
		return false
	}
	c.state = DragActive
	if c.OnDragStart != nil {
		c.OnDragStart(c)
	}
	return true
}

// Release handles a pointer release. An active drag ends without moving the
// target; an idle controller ignores it.
func (c *DragController) Release(x, y float64) {
	if c.state != DragActive {
		return
	}
	c.state = DragIdle
	if c.OnDragEnd != nil {
		c.OnDragEnd(c)
	}
}

// Drag handles pointer movement by (dx, dy) while a button is held. While
// active, the target moves by the same delta. Idle controllers ignore it.
func (c *DragController) Drag(x, y, dx, dy float64) {
	if c.state != DragActive {
		return
	}
	tx, ty := c.target.Position()
	c.target.Update(Move(tx+dx, ty+dy))
}

// Attachment ties a DragController to an EventSource.
type Attachment struct {
	handles [3]CallbackHandle
}

// Detach unsubscribes the controller. It does not change the controller's
// state.
func (a Attachment) Detach() {
	for _, h := range a.handles {
		h.Remove()
	}
}

// Attach subscribes the controller to src's press, release and drag events.
func (c *DragController) Attach(src EventSource) Attachment {
	return Attachment{handles: [3]CallbackHandle{
		src.OnPointerDown(func(ctx PointerContext) {
			if !c.anyButton && ctx.Button != c.button {
				return
			}
			c.Press(ctx.X, ctx.Y)
		}),
		src.OnPointerUp(func(ctx PointerContext) {
			c.Release(ctx.X, ctx.Y)
		}),
		src.OnDrag(func(ctx DragContext) {
			c.Drag(ctx.X, ctx.Y, ctx.DeltaX, ctx.DeltaY)
		}),
	}}
}
