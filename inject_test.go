package tilestack

import "testing"

func TestInjectClick(t *testing.T) {
	r := NewPointerRouterWithInput(newFakeInput())
	var log eventLog
	log.attach(r)

	r.InjectClick(50, 50)
	if r.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", r.Pending())
	}

	// Tick 1: press
	r.Process()
	if r.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after tick 1, got %d", r.Pending())
	}
	if len(log.events) != 1 || log.events[0] != "down" {
		t.Fatalf("events after tick 1 = %v, want [down]", log.events)
	}

	// Tick 2: release
	r.Process()
	if r.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after tick 2, got %d", r.Pending())
	}
	if len(log.events) != 2 || log.events[1] != "up" {
		t.Errorf("events after tick 2 = %v, want [down up]", log.events)
	}
}

func TestInjectSkipsRealInput(t *testing.T) {
	in := newFakeInput()
	in.pressed[MouseButtonLeft] = true
	r := NewPointerRouterWithInput(in)
	var log eventLog
	log.attach(r)

	r.InjectMove(1, 1) // queued move while the router is up reads as a press
	r.Process()
	if len(log.downs) != 1 || log.downs[0].X != 1 {
		t.Fatalf("downs = %+v, want one press at the injected position", log.downs)
	}

	// Queue empty: real input takes over, still held at (0, 0).
	r.Process()
	if len(log.drags) != 1 || log.drags[0].DeltaX != -1 {
		t.Errorf("drags = %+v, want one drag back to the real cursor", log.drags)
	}
}

func TestInjectDrag(t *testing.T) {
	r := NewPointerRouterWithInput(nil)
	var log eventLog
	log.attach(r)

	// Drag from (10,10) to (200,200) over 5 ticks:
	// tick 0: press at (10,10)
	// tick 1: move to (73.33, 73.33)
	// tick 2: move to (136.67, 136.67)
	// tick 3: move to (200, 200)
	// tick 4: release at (200, 200)
	r.InjectDrag(10, 10, 200, 200, 5)
	if r.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", r.Pending())
	}
	for i := 0; i < 5; i++ {
		r.Process()
	}

	if len(log.events) != 5 || log.events[0] != "down" || log.events[4] != "up" {
		t.Fatalf("events = %v, want down, 3 drags, up", log.events)
	}
	var sumX, sumY float64
	for _, d := range log.drags {
		sumX += d.DeltaX
		sumY += d.DeltaY
	}
	if !approxEqual(sumX, 190) || !approxEqual(sumY, 190) {
		t.Errorf("total delta = (%v, %v), want (190, 190)", sumX, sumY)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	r := NewPointerRouterWithInput(nil)
	r.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if r.Pending() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", r.Pending())
	}
}

func TestInjectButtonPressKeepsButton(t *testing.T) {
	r := NewPointerRouterWithInput(nil)
	var log eventLog
	log.attach(r)

	r.InjectButtonPress(0, 0, MouseButtonMiddle, ModCtrl)
	r.InjectMove(4, 0)
	r.InjectRelease(4, 0)
	for r.Pending() > 0 {
		r.Process()
	}

	if log.downs[0].Button != MouseButtonMiddle || log.downs[0].Modifiers != ModCtrl {
		t.Errorf("down ctx = %+v, want middle + ctrl", log.downs[0])
	}
	if log.drags[0].Button != MouseButtonMiddle {
		t.Errorf("drag button = %v, want middle", log.drags[0].Button)
	}
	if log.ups[0].Button != MouseButtonMiddle {
		t.Errorf("up button = %v, want middle", log.ups[0].Button)
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
