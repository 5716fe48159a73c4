package runtime

import schemeerrors "github.com/cwbudde/go-syasi/errors"

// queueSize bounds the reference-count sweep's work queue, mirroring the
// original source's fixed-size gcq array (GC_QUEUE_SIZE) in gc.cpp.
// Exhausting it is a fatal InternalError, never a silent truncation.
const queueSize = 1 << 22

// cycleThreshold is the live-set size at which collect() additionally
// runs the cycle-breaking pass, matching gc.cpp's GC_CYC_THRESHOLD.
const cycleThreshold = 4096

// Store is the reference-counted value store (§4.1): it tracks every
// live value, counts inbound references, reclaims dead values via a
// reference-count sweep, and breaks reference cycles among containers
// with a mark pass. One Store belongs to exactly one Interpreter
// instance — per §9's "Global interpreter state" note, it is never a
// package-level singleton, so two interpreters can run in the same
// process without interfering.
type Store struct {
	joined    map[Value]int // live value -> current refcount
	pending   []Value       // values newly dropped to zero references
	threshold int

	symbols map[string]*Symbol // interning table, shares join bookkeeping

	trueVal, falseVal *Boolean // lazily-created #t / #f singletons

	// Stats, exposed for tests asserting a collection actually ran
	// (§8 testable properties), in the spirit of the teacher's
	// runtime.PoolStats / GetPoolStats.
	lastForceFreed int
	lastCycleFreed int
}

// NewStore creates an empty value store.
func NewStore() *Store {
	return &Store{
		joined:    make(map[Value]int),
		symbols:   make(map[string]*Symbol),
		threshold: cycleThreshold,
	}
}

// SetCycleThreshold overrides the live-set size at which collect()
// additionally runs the cycle pass. Exposed so tests can force cycle
// collection on a tiny heap without allocating thousands of values.
func (s *Store) SetCycleThreshold(n int) {
	s.threshold = n
}

// join registers a freshly constructed value with the store at
// refcount zero. Every value constructor in this package calls it
// exactly once.
func (s *Store) join(v Value) {
	s.joined[v] = 0
}

// quit removes a value from the live set. Called once a value has been
// fully destroyed by force() or the cycle pass.
func (s *Store) quit(v Value) {
	delete(s.joined, v)
}

// Attach records one additional owning reference to v and returns v for
// pass-through, e.g. `env.Define(name, st.Attach(val))`. Attaching nil
// is a no-op. Two attaches require two Expose calls.
func (s *Store) Attach(v Value) Value {
	if v == nil {
		return nil
	}
	if _, live := s.joined[v]; !live {
		return v // not a store-managed value (e.g. a literal outside any store)
	}
	s.joined[v]++
	return v
}

// Expose records one released reference to v. If the count reaches
// zero, v is appended to the pending list for the next force().
func (s *Store) Expose(v Value) {
	if v == nil {
		return
	}
	count, live := s.joined[v]
	if !live {
		return
	}
	count--
	s.joined[v] = count
	if count <= 0 {
		s.pending = append(s.pending, v)
	}
}

// Collect runs an immediate reference-count sweep, then, if the live
// set has grown past the configured threshold, runs the cycle pass and
// sweeps again. This is the method the evaluator calls after each
// top-level expression (§2).
func (s *Store) Collect() error {
	if err := s.force(); err != nil {
		return err
	}
	if len(s.joined) < s.threshold {
		return nil
	}
	s.cycleResolve()
	return s.force()
}

// force drains the pending list to a fixpoint: every value whose count
// is still zero is released, which may expose further references and
// append more pending entries, until the queue is empty. Grounded on
// GarbageCollector::force in original_source/gc.cpp.
func (s *Store) force() error {
	queue := make([]Value, 0, len(s.pending))
	for _, v := range s.pending {
		if count, live := s.joined[v]; live && count <= 0 {
			queue = append(queue, v)
		}
	}
	s.pending = nil

	freed := 0
	for i := 0; i < len(queue); i++ {
		v := queue[i]
		if _, live := s.joined[v]; !live {
			continue // already destroyed via another path
		}
		s.quit(v)
		freed++
		if r, ok := v.(releaser); ok {
			r.release(s)
		} else if r, ok := v.(Releasable); ok {
			r.Release(s)
		}
		// Draining newly-pending entries into the same queue keeps this
		// loop flat (no recursion) even for long chains of releases.
		for _, np := range s.pending {
			queue = append(queue, np)
			if len(queue) > queueSize {
				return schemeerrors.NewInternalError("reference-count sweep queue overflow")
			}
		}
		s.pending = nil
	}
	s.lastForceFreed = freed
	return nil
}

// cycleResolve runs the mark pass over container values (pairs,
// vectors) described in §4.1: for each container, compute gc_refs by
// subtracting one for every outbound reference to another container;
// containers whose gc_refs remains positive are externally-reachable
// roots of the container subgraph, and every container transitively
// reachable from a root is kept. Everything else is deleted. Grounded
// on GarbageCollector::cycle_resolve in original_source/gc.cpp.
func (s *Store) cycleResolve() {
	type node struct {
		v       Container
		gcRefs  int
		keep    bool
		visited bool
	}
	nodes := make(map[Value]*node)
	for v, count := range s.joined {
		if c, ok := v.(Container); ok {
			nodes[v] = &node{v: c, gcRefs: count}
		}
	}
	for _, n := range nodes {
		n.v.Trace(func(ref Value) {
			if target, ok := nodes[ref]; ok {
				target.gcRefs--
			}
		})
	}

	var queue []*node
	for _, n := range nodes {
		if n.gcRefs > 0 {
			n.visited = true
			queue = append(queue, n)
		}
	}
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		n.keep = true
		n.v.Trace(func(ref Value) {
			if target, ok := nodes[ref]; ok && !target.visited {
				target.visited = true
				queue = append(queue, target)
			}
		})
	}

	freed := 0
	for v, n := range nodes {
		if n.keep {
			continue
		}
		s.quit(v)
		freed++
		if r, ok := v.(releaser); ok {
			r.release(s)
		} else if r, ok := v.(Releasable); ok {
			r.Release(s)
		}
	}
	s.lastCycleFreed = freed
}

// LiveCount returns the number of values currently tracked by the
// store. Useful for tests asserting that garbage was actually reclaimed.
func (s *Store) LiveCount() int {
	return len(s.joined)
}

// RefCount returns the current reference count of v, or 0 if v is not
// (or is no longer) tracked by this store.
func (s *Store) RefCount(v Value) int {
	return s.joined[v]
}

// Stats reports bookkeeping from the most recent Collect call.
type Stats struct {
	Live       int
	ForceFreed int
	CycleFreed int
}

// Stats returns a snapshot of the store's bookkeeping.
func (s *Store) Stats() Stats {
	return Stats{Live: len(s.joined), ForceFreed: s.lastForceFreed, CycleFreed: s.lastCycleFreed}
}
