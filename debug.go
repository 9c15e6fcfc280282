package tilestack

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick metrics. Only populated when Scene.debug is true.
type tickStats struct {
	tick       uint64
	events     int
	composites int
	drawables  int
	elapsed    time.Duration
}

// debugLog prints tick stats to stderr. Quiet ticks are skipped.
func (s *Scene) debugLog(stats tickStats) {
	if !s.debug || stats.events == 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilestack] tick %d: events: %d | composites: %d | drawables: %d | update: %v\n",
		stats.tick, stats.events, stats.composites, stats.drawables, stats.elapsed)
}

// debugMaxMembers is the member count above which a composite is reported.
// Update is O(members) and runs every tick.
const debugMaxMembers = 64

func debugCheckMemberCount(n *CompositeNode) {
	if len(n.members) > debugMaxMembers {
		_, _ = fmt.Fprintf(os.Stderr, "[tilestack] warning: composite %q has %d members (threshold %d)\n",
			n.name, len(n.members), debugMaxMembers)
	}
}
