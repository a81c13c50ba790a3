package rt

import "sync"

// state distinguishes the collector's three modes (§4.5).
type state int

const (
	stateIdle state = iota
	stateCollecting
	statePaused
)

// Collector is the process-wide registry of live managed objects,
// partitioned into young (recently allocated) and old (survivors of at
// least one young collection) generations. It runs trial deletion to find
// unreachable cycles, driven by an adaptive threshold estimator per
// generation.
//
// A single mutex serializes the reachability-analysis phase; the deletion
// phase runs outside it (§4.5, §5). The state field, checked under the same
// mutex at collection entry, is the sole admission gate: only one collect
// call is ever inside the reachability phase at a time, so only one
// deletion list exists at a time even though deletion itself runs unlocked.
type Collector struct {
	mu    sync.Mutex
	st    state
	young map[Object]struct{}
	old   map[Object]struct{}

	stats stats

	logger *logger
}

// stats bundles the two generations' adaptive estimators.
type stats struct {
	youngThreshold estimator
	oldThreshold   estimator
}

func newCollector() *Collector {
	return &Collector{
		young:  make(map[Object]struct{}),
		old:    make(map[Object]struct{}),
		stats:  newStats(),
		logger: defaultLogger(),
	}
}

// globalCollector is the process-wide singleton, constructed once at
// package init with well-defined behavior at process exit via Shutdown.
var globalCollector = newCollector()

// GlobalCollector returns the process-wide collector singleton.
func GlobalCollector() *Collector { return globalCollector }

// track registers obj with the young generation, consulting the adaptive
// estimator first: a young collection runs if the young set has exceeded
// its threshold, else an old collection runs if the old set has. Running
// the collection synchronously on the calling thread is safe even though
// obj is about to be inserted, because obj's strong count is already 1,
// held by the caller — it cannot be unreachable.
func (c *Collector) track(obj Object) {
	c.mu.Lock()
	youngSize := len(c.young)
	oldSize := len(c.old)
	c.mu.Unlock()

	if c.stats.youngThreshold.exceeded(youngSize) {
		c.collect(false)
	} else if c.stats.oldThreshold.exceeded(oldSize) {
		c.collect(true)
	}

	c.mu.Lock()
	c.young[obj] = struct{}{}
	c.mu.Unlock()
}

// untrack removes obj from whichever generation holds it. Called by Ref at
// the moment it destroys an object through reference counting.
func (c *Collector) untrack(obj Object) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.young[obj]; ok {
		delete(c.young, obj)
		return
	}

	delete(c.old, obj)
}

// ForceCollect runs trial deletion on demand: old selects the old
// generation, false (the default) the young generation. Returns the number
// of objects reclaimed.
func (c *Collector) ForceCollect(old bool) int {
	return c.collect(old)
}

// Pause suppresses all future collections until Resume. A paused collector
// still accepts track/untrack.
func (c *Collector) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st = statePaused
}

// Resume clears a prior Pause.
func (c *Collector) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st == statePaused {
		c.st = stateIdle
	}
}

// collect runs the trial-deletion algorithm of §4.5 on one generation.
func (c *Collector) collect(old bool) int {
	var (
		toDelete []Object
		admitted bool
	)

	func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		set := c.young
		if old {
			set = c.old
		}

		// A re-entrant call (e.g. from inside a destructor running as
		// part of a collection already in progress) or a call while
		// paused returns 0 immediately — this check, under the mutex,
		// is the collector's sole admission gate (see the deletion-phase
		// data race discussion in DESIGN.md).
		if c.st != stateIdle || len(set) == 0 {
			return
		}

		c.st = stateCollecting
		admitted = true

		// 1. Snapshot strong counts.
		for o := range set {
			o.meta().outRef = int(o.meta().loadStrong())
		}

		// 2. Subtract internal edges.
		for o := range set {
			o.ForEachChild(func(child Object) {
				if child != nil {
					child.meta().outRef--
				}
			})
		}

		// 3. Root set.
		worklist := make([]Object, 0, len(set))
		for o := range set {
			if o.meta().outRef > 0 {
				worklist = append(worklist, o)
			}
		}

		// 4. Reachability closure.
		for len(worklist) > 0 {
			o := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			o.ForEachChild(func(child Object) {
				if child != nil && child.meta().outRef == 0 {
					child.meta().outRef = 1
					worklist = append(worklist, child)
				}
			})
		}

		// 5. Partition: objects with outRef == 0 are unreachable cycle
		// garbage. Zero their strong count now — this is what makes
		// Ref.Live() return false from within a sibling's OnDestroy.
		for o := range set {
			if o.meta().outRef == 0 {
				delete(set, o)

				o.meta().zeroStrong()
				toDelete = append(toDelete, o)
			}
		}

		// 6. Promote survivors, remembering the young generation's
		// post-collection size before the merge empties it — §4.6's
		// update must see the size of the generation just processed,
		// not the old generation it gets folded into.
		survivors := len(set)

		if !old {
			for o := range c.young {
				c.old[o] = struct{}{}
			}

			c.young = make(map[Object]struct{})
		}

		// 7. Update the adaptive threshold for the generation just
		// processed.
		if old {
			c.stats.oldThreshold.update(survivors)
		} else {
			c.stats.youngThreshold.update(survivors)
		}
	}()

	// 8. Destroy outside the lock, decrementing weak on each Meta. The
	// state stays COLLECTING until the list is done, so a collect call made
	// from an OnDestroy, or from another goroutine, returns 0.
	for _, o := range toDelete {
		if d, ok := any(o).(Destroyer); ok {
			d.OnDestroy()
		}

		o.meta().decWeak()
	}

	if admitted {
		c.mu.Lock()
		if c.st == stateCollecting {
			c.st = stateIdle
		}
		c.mu.Unlock()
	}

	if len(toDelete) > 0 {
		c.logger.collected(old, len(toDelete))
	}

	return len(toDelete)
}

// Shutdown walks both generations, zeros strong counts, destroys every
// remaining object, then lets every remaining Meta go — deliberately
// ignoring cycles and external references, because the process is ending
// (§4.5 "Shutdown").
func (c *Collector) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, set := range []map[Object]struct{}{c.young, c.old} {
		for o := range set {
			o.meta().zeroStrong()
		}
	}

	for _, set := range []map[Object]struct{}{c.young, c.old} {
		for o := range set {
			if d, ok := any(o).(Destroyer); ok {
				d.OnDestroy()
			}
		}
	}

	c.young = make(map[Object]struct{})
	c.old = make(map[Object]struct{})
}

// Reconfigure adjusts the floor values the adaptive estimators fall back to
// — the hook rtconfig's fsnotify watch calls on a config file write.
func (c *Collector) Reconfigure(youngFloor, oldFloor int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.youngThreshold.setFloor(youngFloor)
	c.stats.oldThreshold.setFloor(oldFloor)
}

// Snapshot reports the current sizes and thresholds of both generations,
// the observability surface §7 calls for.
type Snapshot struct {
	YoungSize, OldSize           int
	YoungThreshold, OldThreshold int
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		YoungSize:      len(c.young),
		OldSize:        len(c.old),
		YoungThreshold: c.stats.youngThreshold.get(),
		OldThreshold:   c.stats.oldThreshold.get(),
	}
}

// collecting reports whether a collection is currently running.
func (c *Collector) collecting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.st == stateCollecting
}
