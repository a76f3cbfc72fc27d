package deque

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pfds/maybe"
)

// balance is the constant c of the invariant
//
//	|front| ≤ c·|rear| + 1   and   |rear| ≤ c·|front| + 1
//
// Okasaki's real-time deque works for c = 2 or c = 3.
const balance = 3

// ErrEmptyDeque is returned when reading from or removing from an empty deque.
var ErrEmptyDeque = errors.New("deque is empty")

// Deque is an immutable double-ended queue. The zero value is an empty deque.
//
// The rear stream holds the rear elements in reverse order, i.e. the last
// element of the deque is the first cell of rear.
type Deque[T any] struct {
	lenf  int
	front stream[T]
	sf    stream[T] // schedule for front
	lenr  int
	rear  stream[T]
	sr    stream[T] // schedule for rear
}

// Empty returns an empty deque.
func Empty[T any]() Deque[T] {
	return Deque[T]{}
}

// Of creates a deque holding xs, in order.
func Of[T any](xs ...T) Deque[T] {
	var d Deque[T]
	for _, x := range xs {
		d = d.Snoc(x)
	}
	return d
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements in d. O(1).
func (d Deque[T]) Size() int {
	return d.lenf + d.lenr
}

// IsEmpty is true if d holds no elements.
func (d Deque[T]) IsEmpty() bool {
	return d.lenf+d.lenr == 0
}

// Cons returns a copy of d with x prepended.
func (d Deque[T]) Cons(x T) Deque[T] {
	return check(Deque[T]{
		lenf:  d.lenf + 1,
		front: consStream(x, d.front),
		sf:    exec1(d.sf),
		lenr:  d.lenr,
		rear:  d.rear,
		sr:    exec1(d.sr),
	})
}

// Snoc returns a copy of d with x appended.
func (d Deque[T]) Snoc(x T) Deque[T] {
	return check(Deque[T]{
		lenf:  d.lenf,
		front: d.front,
		sf:    exec1(d.sf),
		lenr:  d.lenr + 1,
		rear:  consStream(x, d.rear),
		sr:    exec1(d.sr),
	})
}

// Head returns the first element of d.
func (d Deque[T]) Head() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, errors.WithStack(ErrEmptyDeque)
	}
	if d.lenf == 0 { // single element, living in rear
		return d.rear.force().head, nil
	}
	return d.front.force().head, nil
}

// Last returns the last element of d.
func (d Deque[T]) Last() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, errors.WithStack(ErrEmptyDeque)
	}
	if d.lenr == 0 { // single element, living in front
		return d.front.force().head, nil
	}
	return d.rear.force().head, nil
}

// Tail returns a copy of d without its first element.
func (d Deque[T]) Tail() (Deque[T], error) {
	if d.IsEmpty() {
		return d, errors.WithStack(ErrEmptyDeque)
	}
	if d.lenf == 0 {
		return Deque[T]{}, nil
	}
	return check(Deque[T]{
		lenf:  d.lenf - 1,
		front: d.front.force().tail,
		sf:    exec2(d.sf),
		lenr:  d.lenr,
		rear:  d.rear,
		sr:    exec2(d.sr),
	}), nil
}

// Init returns a copy of d without its last element.
func (d Deque[T]) Init() (Deque[T], error) {
	if d.IsEmpty() {
		return d, errors.WithStack(ErrEmptyDeque)
	}
	if d.lenr == 0 {
		return Deque[T]{}, nil
	}
	return check(Deque[T]{
		lenf:  d.lenf,
		front: d.front,
		sf:    exec2(d.sf),
		lenr:  d.lenr - 1,
		rear:  d.rear.force().tail,
		sr:    exec2(d.sr),
	}), nil
}

// Reverse returns d with its elements in reverse order. O(1).
func (d Deque[T]) Reverse() Deque[T] {
	return Deque[T]{
		lenf:  d.lenr,
		front: d.rear,
		sf:    d.sr,
		lenr:  d.lenf,
		rear:  d.front,
		sr:    d.sf,
	}
}

// PeekHead returns the first element of d, if any.
func (d Deque[T]) PeekHead() maybe.Maybe[T] {
	x, err := d.Head()
	return maybe.Of(x, err == nil)
}

// PeekLast returns the last element of d, if any.
func (d Deque[T]) PeekLast() maybe.Maybe[T] {
	x, err := d.Last()
	return maybe.Of(x, err == nil)
}

// Items returns the elements of d, in order, as a new slice. O(n).
func (d Deque[T]) Items() []T {
	items := d.front.collect(make([]T, 0, d.Size()))
	rear := d.rear.collect(nil)
	for i := len(rear) - 1; i >= 0; i-- {
		items = append(items, rear[i])
	}
	assertThat(len(items) == d.Size(), "deque holds %d items, counted %d", d.Size(), len(items))
	return items
}

// --- Rebalancing -----------------------------------------------------------

// check restores the balance invariant. If one side has grown too long, half
// of its elements are lazily rotated to the other side; the rotation is then
// driven forward by the schedules sf and sr.
func check[T any](d Deque[T]) Deque[T] {
	n := d.lenf + d.lenr
	switch {
	case d.lenf > balance*d.lenr+1:
		i := n / 2
		j := n - i
		tracer().Debugf("deque: front too long (%d|%d), rebuilding to (%d|%d)", d.lenf, d.lenr, i, j)
		f := take(i, d.front)
		r := rotateDrop(d.rear, i, d.front)
		return Deque[T]{lenf: i, front: f, sf: f, lenr: j, rear: r, sr: r}
	case d.lenr > balance*d.lenf+1:
		j := n / 2
		i := n - j
		tracer().Debugf("deque: rear too long (%d|%d), rebuilding to (%d|%d)", d.lenf, d.lenr, i, j)
		r := take(j, d.rear)
		f := rotateDrop(d.front, j, d.rear)
		return Deque[T]{lenf: i, front: f, sf: f, lenr: j, rear: r, sr: r}
	}
	return d
}
