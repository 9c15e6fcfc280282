package tilestack

// syntheticPointerEvent represents a single injected pointer sample.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	mods    KeyModifiers
}

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next Process call.
func (r *PointerRouter) InjectPress(x, y float64) {
	r.InjectButtonPress(x, y, MouseButtonLeft, 0)
}

// InjectButtonPress queues a press of button at (x, y) with the given
// modifiers held.
func (r *PointerRouter) InjectButtonPress(x, y float64, button MouseButton, mods KeyModifiers) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  button,
		mods:    mods,
	})
}

// InjectMove queues a pointer move to (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (r *PointerRouter) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  r.lastQueuedButton(),
	})
}

// InjectRelease queues a release at (x, y).
func (r *PointerRouter) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  r.lastQueuedButton(),
	})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (r *PointerRouter) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves ending exactly on (toX, toY), and a release there. The
// whole displacement is therefore reported through drag events. Minimum
// frames is 2 (press + release, no movement).
func (r *PointerRouter) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (r *PointerRouter) Pending() int {
	return len(r.injectQueue)
}

// lastQueuedButton keeps moves and releases on the button of the pending
// press, falling back to the held button.
func (r *PointerRouter) lastQueuedButton() MouseButton {
	for i := len(r.injectQueue) - 1; i >= 0; i-- {
		if r.injectQueue[i].pressed {
			return r.injectQueue[i].button
		}
	}
	if r.state.down {
		return r.state.button
	}
	return MouseButtonLeft
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// is skipped for that tick).
func (r *PointerRouter) processInjectedInput() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	evt := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]

	r.processPointer(evt.x, evt.y, evt.pressed, evt.button, evt.mods)
	return true
}
