package tilestack

import "testing"

// countingTarget wraps a Sprite and counts Update calls.
type countingTarget struct {
	*Sprite
	updates int
}

func (c *countingTarget) Update(u TransformUpdate) {
	c.updates++
	c.Sprite.Update(u)
}

func TestNewDragControllerIdle(t *testing.T) {
	c := NewDragController(NewSizedSprite("s", 10, 10))
	if c.State() != DragIdle || c.Active() {
		t.Errorf("State = %v, want idle", c.State())
	}
}

func TestNewDragControllerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil target")
		}
	}()
	NewDragController(nil)
}

func TestDragStateString(t *testing.T) {
	if DragIdle.String() != "idle" || DragActive.String() != "dragging" {
		t.Errorf("String = %q/%q", DragIdle.String(), DragActive.String())
	}
	if DragState(9).String() != "unknown" {
		t.Error("out-of-range state should be unknown")
	}
}

func TestDragPressHitTest(t *testing.T) {
	ref := NewSizedSprite("ref", 10, 10)
	n := newTestComposite(t, ref, NewSizedSprite("big", 50, 50))

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 5, 5, true},
		{"right edge", 10, 5, false},
		{"left edge", 0, 5, false},
		{"bottom edge", 5, 10, false},
		{"inside other member only", 20, 20, false},
		{"outside", -1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDragController(n)
			if got := c.Press(tt.x, tt.y); got != tt.want {
				t.Errorf("Press(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if c.Active() != tt.want {
				t.Errorf("Active = %v, want %v", c.Active(), tt.want)
			}
		})
	}
}

func TestDragDeltaAccumulation(t *testing.T) {
	n := newTestComposite(t, NewSizedSprite("ref", 10, 10))
	n.Update(Move(50, 50))
	c := NewDragController(n)

	if !c.Press(55, 55) {
		t.Fatal("press inside bounds should start a drag")
	}
	c.Drag(58, 57, 3, 2)
	c.Drag(57, 61, -1, 4)

	if x, y := n.Position(); x != 52 || y != 56 {
		t.Errorf("Position = (%v, %v), want (52, 56)", x, y)
	}

	c.Release(57, 61)
	if x, y := n.Position(); x != 52 || y != 56 {
		t.Errorf("release moved the node to (%v, %v)", x, y)
	}
	if c.State() != DragIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
}

func TestDragIgnoresPointerAbsolutePosition(t *testing.T) {
	s := NewSizedSprite("s", 10, 10)
	c := NewDragController(s)
	c.Press(9, 9)
	// The pointer position is far away; only the delta counts.
	c.Drag(500, 500, 1, 1)
	if s.X != 1 || s.Y != 1 {
		t.Errorf("sprite at (%v, %v), want (1, 1)", s.X, s.Y)
	}
}

func TestDragIdleEventsAreNoOps(t *testing.T) {
	target := &countingTarget{Sprite: NewSizedSprite("s", 10, 10)}
	c := NewDragController(target)

	c.Release(5, 5)
	c.Drag(5, 5, 10, 10)
	c.Press(50, 50) // miss
	c.Drag(5, 5, 10, 10)
	c.Release(5, 5)

	if target.updates != 0 {
		t.Errorf("idle controller updated the target %d times", target.updates)
	}
	if c.State() != DragIdle {
		t.Errorf("State = %v, want idle", c.State())
	}
	if target.X != 0 || target.Y != 0 {
		t.Errorf("target moved to (%v, %v)", target.X, target.Y)
	}
}

func TestDragPressWhileActiveIgnored(t *testing.T) {
	c := NewDragController(NewSizedSprite("s", 10, 10))
	c.Press(5, 5)
	if c.Press(5, 5) {
		t.Error("second press should not report a new drag")
	}
	if !c.Active() {
		t.Error("controller should stay active")
	}
}

func TestDragReusable(t *testing.T) {
	s := NewSizedSprite("s", 10, 10)
	c := NewDragController(s)
	for i := 0; i < 3; i++ {
		x, y := s.X+5, s.Y+5
		if !c.Press(x, y) {
			t.Fatalf("cycle %d: press at (%v, %v) missed", i, x, y)
		}
		c.Drag(x+10, y, 10, 0)
		c.Release(x+10, y)
	}
	if s.X != 30 {
		t.Errorf("X = %v, want 30", s.X)
	}
}

func TestDragHooks(t *testing.T) {
	c := NewDragController(NewSizedSprite("s", 10, 10))
	var events []string
	c.OnDragStart = func(dc *DragController) {
		if dc != c || !dc.Active() {
			t.Error("OnDragStart should see the active controller")
		}
		events = append(events, "start")
	}
	c.OnDragEnd = func(dc *DragController) {
		if dc.Active() {
			t.Error("OnDragEnd should see an idle controller")
		}
		events = append(events, "end")
	}

	c.Release(0, 0) // idle: no hook
	c.Press(5, 5)
	c.Release(5, 5)

	if len(events) != 2 || events[0] != "start" || events[1] != "end" {
		t.Errorf("events = %v, want [start end]", events)
	}
}

func TestDragEndToEnd(t *testing.T) {
	a := NewSizedSprite("block", 10, 10)
	b := NewSizedSprite("gem", 10, 10)
	n := newTestComposite(t, a, b)

	router := NewPointerRouterWithInput(nil)
	c := NewDragController(n)
	c.Attach(router)

	router.InjectPress(5, 5)
	router.Process()
	if c.State() != DragActive {
		t.Fatalf("State = %v after press, want dragging", c.State())
	}

	router.InjectMove(15, 0)
	router.Process()
	for _, s := range []*Sprite{a, b} {
		if s.X != 10 || s.Y != -5 {
			t.Errorf("%s at (%v, %v), want (10, -5)", s.Name, s.X, s.Y)
		}
	}

	router.InjectRelease(15, 0)
	router.Process()
	if c.State() != DragIdle {
		t.Errorf("State = %v after release, want idle", c.State())
	}
	for _, s := range []*Sprite{a, b} {
		if s.X != 10 || s.Y != -5 {
			t.Errorf("%s moved on release to (%v, %v)", s.Name, s.X, s.Y)
		}
	}
}

func TestDragAttachDetach(t *testing.T) {
	s := NewSizedSprite("s", 10, 10)
	router := NewPointerRouterWithInput(nil)
	c := NewDragController(s)
	att := c.Attach(router)
	att.Detach()

	router.InjectDrag(5, 5, 50, 50, 4)
	for router.Pending() > 0 {
		router.Process()
	}
	if c.Active() || s.X != 0 || s.Y != 0 {
		t.Error("detached controller should not react")
	}
}

func TestDragButtonFilter(t *testing.T) {
	s := NewSizedSprite("s", 10, 10)
	router := NewPointerRouterWithInput(nil)
	c := NewDragController(s)
	c.SetButton(MouseButtonRight)
	c.Attach(router)

	router.InjectPress(5, 5)
	router.Process()
	if c.Active() {
		t.Error("left press should not start a right-button drag")
	}
	router.InjectRelease(5, 5)
	router.Process()

	router.InjectButtonPress(5, 5, MouseButtonRight, 0)
	router.Process()
	if !c.Active() {
		t.Error("right press should start the drag")
	}
}

func TestDragTwoControllersOneRouter(t *testing.T) {
	left := NewSizedSprite("left", 10, 10)
	right := NewSizedSprite("right", 10, 10)
	right.X = 100

	router := NewPointerRouterWithInput(nil)
	NewDragController(left).Attach(router)
	NewDragController(right).Attach(router)

	router.InjectDrag(105, 5, 125, 5, 3)
	for router.Pending() > 0 {
		router.Process()
	}
	if left.X != 0 {
		t.Errorf("left moved to %v", left.X)
	}
	if right.X != 120 {
		t.Errorf("right.X = %v, want 120", right.X)
	}
}
