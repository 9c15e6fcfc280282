package tilestack

import (
	"reflect"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the frame driver: it owns the explicit draw-order list, the
// composites refreshed every tick, and the pointer router feeding drag
// controllers.
type Scene struct {
	// ClearColor fills the screen before drawing. The zero value leaves the
	// screen as ebiten hands it over.
	ClearColor Color

	drawables  []Drawable
	composites []*CompositeNode
	router     *PointerRouter
	updateFunc func() error
	testRunner *TestRunner

	debug bool
	ticks uint64
}

// NewScene creates an empty scene reading ebiten's mouse state.
func NewScene() *Scene {
	return NewSceneWithInput(ebitenInput{})
}

// NewSceneWithInput creates an empty scene whose router polls in. A nil in
// yields a scene driven only by injected events.
func NewSceneWithInput(in PointerInput) *Scene {
	return &Scene{router: NewPointerRouterWithInput(in)}
}

// Router returns the scene's pointer router.
func (s *Scene) Router() *PointerRouter {
	return s.router
}

// Add appends drawables to the draw order. Later entries draw on top.
// Panics if any drawable is nil.
func (s *Scene) Add(ds ...Drawable) {
	for _, d := range ds {
		if d == nil {
			panic("tilestack: cannot add nil drawable")
		}
	}
	s.drawables = append(s.drawables, ds...)
}

// Remove takes d out of the draw order, keeping the order of the rest.
// Reports whether d was present. Drawables are matched with ==, so a value
// whose type is not comparable (one holding a slice or map) can never be
// removed; Remove returns false for it.
func (s *Scene) Remove(d Drawable) bool {
	if d == nil || !reflect.TypeOf(d).Comparable() {
		return false
	}
	for i, c := range s.drawables {
		if c == d {
			copy(s.drawables[i:], s.drawables[i+1:])
			s.drawables[len(s.drawables)-1] = nil
			s.drawables = s.drawables[:len(s.drawables)-1]
			return true
		}
	}
	return false
}

// DrawOrder returns the draw-order list. The returned slice MUST NOT be
// mutated by the caller.
func (s *Scene) DrawOrder() []Drawable {
	return s.drawables
}

// Track registers composites for the per-tick Refresh call.
func (s *Scene) Track(ns ...*CompositeNode) {
	s.composites = append(s.composites, ns...)
}

// Untrack stops refreshing n. Reports whether n was tracked.
func (s *Scene) Untrack(n *CompositeNode) bool {
	for i, c := range s.composites {
		if c == n {
			s.composites = append(s.composites[:i], s.composites[i+1:]...)
			return true
		}
	}
	return false
}

// SetUpdateFunc sets a callback run every tick after input processing.
// A non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Draggable creates a DragController for target and attaches it to the
// scene's router. Detach the returned Attachment to stop the controller
// reacting to the router.
func (s *Scene) Draggable(target Draggable) (*DragController, Attachment) {
	c := NewDragController(target)
	return c, c.Attach(s.router)
}

// SetTestRunner attaches a script runner stepped at the start of every tick.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Update advances one tick: script runner, pointer input, the user update
// func, then Refresh on every tracked composite.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.ticks++

	if s.testRunner != nil {
		s.testRunner.step(s.router)
	}
	s.router.Process()

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	for _, n := range s.composites {
		n.Refresh()
	}

	if s.debug {
		s.debugLog(tickStats{
			tick:       s.ticks,
			events:     s.router.events,
			composites: len(s.composites),
			drawables:  len(s.drawables),
			elapsed:    time.Since(t0),
		})
	}
	s.router.events = 0
	return nil
}

// Draw clears the screen to ClearColor and draws every drawable in order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}
	for _, d := range s.drawables {
		d.Draw(screen)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, oversized
// composites are reported and per-tick stats are logged to stderr for ticks
// that dispatched pointer events.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that
// composite construction (which lacks a Scene pointer) can check it cheaply.
var globalDebug bool
