package tilestack

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// knownActions lists the actions a script may use.
var knownActions = map[string]bool{
	"press":   true,
	"move":    true,
	"release": true,
	"click":   true,
	"drag":    true,
	"wait":    true,
}

// TestRunner sequences injected pointer events across ticks for automated
// interaction testing. Attach to a Scene via SetTestRunner.
//
//	{"steps": [
//		{"action": "press", "x": 60, "y": 60},
//		{"action": "move", "x": 90, "y": 70},
//		{"action": "release", "x": 90, "y": 70},
//		{"action": "wait", "frames": 10}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Scene.Update before the
// router processes input.
func (r *TestRunner) step(router *PointerRouter) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if router.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		router.InjectPress(st.X, st.Y)
	case "move":
		router.InjectMove(st.X, st.Y)
	case "release":
		router.InjectRelease(st.X, st.Y)
	case "click":
		router.InjectClick(st.X, st.Y)
	case "drag":
		router.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && router.Pending() == 0 {
		r.done = true
	}
}
