package lazy

import "sync/atomic"

// Suspension is a deferred computation yielding a value of type T.
// The zero value is not usable; create suspensions with Suspend or Value.
type Suspension[T any] struct {
	thunk atomic.Pointer[func() T] // nil after evaluation
	value atomic.Pointer[T]        // single-assignment result cell
}

// Suspend creates an unevaluated suspension for thunk.
func Suspend[T any](thunk func() T) *Suspension[T] {
	assertThat(thunk != nil, "cannot suspend a nil computation")
	s := &Suspension[T]{}
	s.thunk.Store(&thunk)
	return s
}

// Value creates a suspension which is already evaluated to x.
// Forcing it is free and does not count as an evaluation.
func Value[T any](x T) *Suspension[T] {
	s := &Suspension[T]{}
	s.value.Store(&x)
	return s
}

// Force returns the result of the suspended computation, running it if it
// has not been run before.
func (s *Suspension[T]) Force() T {
	if v := s.value.Load(); v != nil {
		return *v
	}
	thunk := s.thunk.Load()
	if thunk == nil { // the result is stored before the thunk is dropped
		return *s.value.Load()
	}
	x := (*thunk)()
	stats.evaluations.Add(1)
	if !s.value.CompareAndSwap(nil, &x) {
		stats.races.Add(1)
		tracer().Debugf("suspension evaluated concurrently, keeping first result")
	}
	s.thunk.Store(nil) // release everything the computation captured
	return *s.value.Load()
}

// Evaluated reports whether s has been forced already. It never forces s.
func (s *Suspension[T]) Evaluated() bool {
	return s.value.Load() != nil
}

// --- Statistics ------------------------------------------------------------

var stats struct {
	evaluations atomic.Uint64
	races       atomic.Uint64
}

// Stats holds process-wide counters for suspensions.
type Stats struct {
	Evaluations uint64 // number of computations run by Force
	Races       uint64 // number of computations whose result was discarded
}

// Statistics returns a snapshot of the process-wide suspension counters.
// Clients measure the work of an operation by comparing two snapshots.
func Statistics() Stats {
	return Stats{
		Evaluations: stats.evaluations.Load(),
		Races:       stats.races.Load(),
	}
}

// Sub returns the difference of two snapshots.
func (s Stats) Sub(before Stats) Stats {
	return Stats{
		Evaluations: s.Evaluations - before.Evaluations,
		Races:       s.Races - before.Races,
	}
}
