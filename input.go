package tilestack

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries press and release event data.
type PointerContext struct {
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragContext carries drag event data. DeltaX/DeltaY is the movement since
// the previous drag (or press) event, StartX/StartY the press position.
type DragContext struct {
	X, Y           float64
	DeltaX, DeltaY float64
	StartX, StartY float64
	Button         MouseButton
	Modifiers      KeyModifiers
}

// EventSource delivers pointer events in program order on the caller's
// thread. PointerRouter is the ebiten-backed implementation.
type EventSource interface {
	OnPointerDown(fn func(PointerContext)) CallbackHandle
	OnPointerUp(fn func(PointerContext)) CallbackHandle
	OnDrag(fn func(DragContext)) CallbackHandle
}

// PointerInput is the polled pointer state read once per tick.
type PointerInput interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b MouseButton) bool
	Modifiers() KeyModifiers
}

// ebitenInput reads pointer state from ebiten's global input.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) IsMouseButtonPressed(b MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b.ebitenButton())
}

func (ebitenInput) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	drag        []dragHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Calling Remove on
// the zero handle, or twice, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	}
}

// removePointerHandler returns a fresh slice without id so that a dispatch
// loop ranging over the old slice is not disturbed.
func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]pointerHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]dragHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// --- Router ---

type pointerState struct {
	down           bool
	button         MouseButton // button captured at press time
	startX, startY float64
	lastX, lastY   float64
	dragging       bool
}

// PointerRouter turns polled mouse state into press, drag and release
// events. Call Process once per tick from the game's Update.
type PointerRouter struct {
	input        PointerInput
	handlers     handlerRegistry
	state        pointerState
	dragDeadZone float64
	injectQueue  []syntheticPointerEvent

	// events counts dispatched events since the last debug report.
	events int
}

// NewPointerRouter creates a router reading ebiten's mouse state.
func NewPointerRouter() *PointerRouter {
	return NewPointerRouterWithInput(ebitenInput{})
}

// NewPointerRouterWithInput creates a router reading from in. Passing nil
// yields a router that only processes injected events.
func NewPointerRouterWithInput(in PointerInput) *PointerRouter {
	return &PointerRouter{input: in}
}

// SetDragDeadZone sets the distance in pixels the pointer must travel from
// the press point before drag events start. Zero (the default) reports every
// movement while a button is held.
func (r *PointerRouter) SetDragDeadZone(pixels float64) {
	r.dragDeadZone = pixels
}

// OnPointerDown registers a callback for button presses.
func (r *PointerRouter) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pointerDown = append(r.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPointerDown}
}

// OnPointerUp registers a callback for button releases.
func (r *PointerRouter) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pointerUp = append(r.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPointerUp}
}

// OnDrag registers a callback for movement while a button is held.
func (r *PointerRouter) OnDrag(fn func(DragContext)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.drag = append(r.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventDrag}
}

// Process consumes one injected event if any is queued, otherwise polls the
// input device, and dispatches the resulting events.
func (r *PointerRouter) Process() {
	if r.processInjectedInput() {
		return
	}
	if r.input == nil {
		return
	}
	mods := r.input.Modifiers()
	mx, my := r.input.CursorPosition()

	// Keep the press-time button while held so the interaction cannot
	// change buttons midway.
	var pressed bool
	button := MouseButtonLeft
	if r.state.down {
		button = r.state.button
		pressed = r.input.IsMouseButtonPressed(button)
	} else {
		for _, b := range [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
			if r.input.IsMouseButtonPressed(b) {
				pressed, button = true, b
				break
			}
		}
	}
	r.processPointer(float64(mx), float64(my), pressed, button, mods)
}

// processPointer runs the pointer state machine for one sample.
func (r *PointerRouter) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &r.state

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		r.firePointerDown(PointerContext{X: x, Y: y, Button: button, Modifiers: mods})

	case !pressed && ps.down:
		ps.down = false
		ps.dragging = false
		r.firePointerUp(PointerContext{X: x, Y: y, Button: ps.button, Modifiers: mods})

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging {
			// Inside the dead zone lastX/lastY stay put, so the first drag
			// delta covers the whole movement since the press.
			if r.dragDeadZone > 0 && math.Hypot(x-ps.startX, y-ps.startY) <= r.dragDeadZone {
				return
			}
			ps.dragging = true
		}
		ctx := DragContext{
			X: x, Y: y,
			DeltaX: x - ps.lastX, DeltaY: y - ps.lastY,
			StartX: ps.startX, StartY: ps.startY,
			Button: ps.button, Modifiers: mods,
		}
		ps.lastX, ps.lastY = x, y
		r.fireDrag(ctx)

	default:
		// Hover: track position only.
		ps.lastX, ps.lastY = x, y
	}
}

// Down reports whether a button is currently held.
func (r *PointerRouter) Down() bool {
	return r.state.down
}

func (r *PointerRouter) firePointerDown(ctx PointerContext) {
	r.events++
	for _, h := range r.handlers.pointerDown {
		h.fn(ctx)
	}
}

func (r *PointerRouter) firePointerUp(ctx PointerContext) {
	r.events++
	for _, h := range r.handlers.pointerUp {
		h.fn(ctx)
	}
}

func (r *PointerRouter) fireDrag(ctx DragContext) {
	r.events++
	for _, h := range r.handlers.drag {
		h.fn(ctx)
	}
}
