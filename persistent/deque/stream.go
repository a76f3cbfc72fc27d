package deque

import "github.com/npillmayer/pfds/lazy"

// cell is an evaluated stream node. A nil cell terminates a stream.
type cell[T any] struct {
	head T
	tail stream[T]
}

// stream is a lazy list. The zero value is the empty stream.
//
// Every function creating a stream from other streams is lazy: nothing is
// evaluated before the first cell of the result is forced. take and append
// are incremental (forcing a cell does O(1) work), drop and reverse are
// monolithic (forcing the first cell does all the work).
type stream[T any] struct {
	susp *lazy.Suspension[*cell[T]]
}

func (s stream[T]) force() *cell[T] {
	if s.susp == nil {
		return nil
	}
	return s.susp.Force()
}

func delay[T any](f func() *cell[T]) stream[T] {
	return stream[T]{susp: lazy.Suspend(f)}
}

func consStream[T any](x T, s stream[T]) stream[T] {
	return stream[T]{susp: lazy.Value(&cell[T]{head: x, tail: s})}
}

// exec1 forces the first cell of a schedule and steps over it.
func exec1[T any](s stream[T]) stream[T] {
	if c := s.force(); c != nil {
		return c.tail
	}
	return s
}

func exec2[T any](s stream[T]) stream[T] {
	return exec1(exec1(s))
}

func appendStreams[T any](s, t stream[T]) stream[T] {
	return delay(func() *cell[T] {
		c := s.force()
		if c == nil {
			return t.force()
		}
		return &cell[T]{head: c.head, tail: appendStreams(c.tail, t)}
	})
}

func take[T any](n int, s stream[T]) stream[T] {
	if n <= 0 {
		return stream[T]{}
	}
	return delay(func() *cell[T] {
		c := s.force()
		if c == nil {
			return nil
		}
		return &cell[T]{head: c.head, tail: take(n-1, c.tail)}
	})
}

func drop[T any](n int, s stream[T]) stream[T] {
	return delay(func() *cell[T] {
		rest := s
		for i := 0; i < n; i++ {
			c := rest.force()
			if c == nil {
				return nil
			}
			rest = c.tail
		}
		return rest.force()
	})
}

// skip is the eager counterpart of drop. Rotations use it to step over the
// elements they have consumed, so that drops do not pile up into chains of
// suspensions.
func skip[T any](n int, s stream[T]) stream[T] {
	for i := 0; i < n; i++ {
		c := s.force()
		if c == nil {
			return s
		}
		s = c.tail
	}
	return s
}

func reverse[T any](s stream[T]) stream[T] {
	return delay(func() *cell[T] {
		var acc stream[T]
		for c := s.force(); c != nil; c = c.tail.force() {
			acc = consStream(c.head, acc)
		}
		return acc.force()
	})
}

// rotateRev computes r ++ reverse(f) ++ a, moving `balance` elements of f per
// forced cell of r.
func rotateRev[T any](r, f, a stream[T]) stream[T] {
	return delay(func() *cell[T] {
		c := r.force()
		if c == nil {
			return appendStreams(reverse(f), a).force()
		}
		return &cell[T]{
			head: c.head,
			tail: rotateRev(c.tail, skip(balance, f), appendStreams(reverse(take(balance, f)), a)),
		}
	})
}

// rotateDrop computes r ++ reverse(drop(j, f)).
func rotateDrop[T any](r stream[T], j int, f stream[T]) stream[T] {
	if j < balance {
		return rotateRev(r, drop(j, f), stream[T]{})
	}
	return delay(func() *cell[T] {
		c := r.force()
		assertThat(c != nil, "rotation ran out of elements with %d left to drop", j)
		return &cell[T]{head: c.head, tail: rotateDrop(c.tail, j-balance, skip(balance, f))}
	})
}

// collect appends the elements of s to buf, forcing all of s.
func (s stream[T]) collect(buf []T) []T {
	for c := s.force(); c != nil; c = c.tail.force() {
		buf = append(buf, c.head)
	}
	return buf
}
