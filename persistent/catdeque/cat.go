package catdeque

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pfds/maybe"
)

// ErrEmptyCat is returned when reading from or removing from an empty deque.
var ErrEmptyCat = errors.New("catenable deque is empty")

// Cat is an immutable catenable double-ended queue. An empty instance is
// usable as an empty deque, i.e. this is legal:
//
//	c := catdeque.Cat[string]{}.Snoc("Galaxy")
//
// Every operation returns a new incarnation of the deque and leaves the
// receiver unchanged.
type Cat[T any] struct {
	c *cat
}

// Empty returns an empty deque.
func Empty[T any]() Cat[T] {
	return Cat[T]{c: emptyCat}
}

// Of creates a deque holding xs, in order.
func Of[T any](xs ...T) Cat[T] {
	c := emptyCat
	for _, x := range xs {
		c = c.snoc(x)
	}
	return Cat[T]{c: c}
}

func (c Cat[T]) core() *cat {
	if c.c == nil {
		return emptyCat
	}
	return c.c
}

// unbox converts a stored element back to T. Storing a nil interface value
// round-trips to the zero value of T.
func unbox[T any](x any) T {
	v, _ := x.(T)
	return v
}

// --- API -------------------------------------------------------------------

// IsEmpty is true if c holds no elements.
func (c Cat[T]) IsEmpty() bool {
	return c.core().isEmpty()
}

// Cons returns a copy of c with x prepended. O(1).
func (c Cat[T]) Cons(x T) Cat[T] {
	return Cat[T]{c: c.core().cons(x)}
}

// Snoc returns a copy of c with x appended. O(1).
func (c Cat[T]) Snoc(x T) Cat[T] {
	return Cat[T]{c: c.core().snoc(x)}
}

// Head returns the first element of c. O(1).
func (c Cat[T]) Head() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, errors.WithStack(ErrEmptyCat)
	}
	return unbox[T](c.core().head()), nil
}

// Last returns the last element of c. O(1).
func (c Cat[T]) Last() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, errors.WithStack(ErrEmptyCat)
	}
	return unbox[T](c.core().last()), nil
}

// Tail returns a copy of c without its first element. O(1) amortized.
func (c Cat[T]) Tail() (Cat[T], error) {
	if c.IsEmpty() {
		return c, errors.WithStack(ErrEmptyCat)
	}
	return Cat[T]{c: c.core().tail()}, nil
}

// Init returns a copy of c without its last element. O(1) amortized.
func (c Cat[T]) Init() (Cat[T], error) {
	if c.IsEmpty() {
		return c, errors.WithStack(ErrEmptyCat)
	}
	return Cat[T]{c: c.core().init()}, nil
}

// Concat returns the concatenation of c and other. O(1) amortized.
func (c Cat[T]) Concat(other Cat[T]) Cat[T] {
	return Concat(c, other)
}

// Concat returns the concatenation of c1 and c2. O(1) amortized.
func Concat[T any](c1, c2 Cat[T]) Cat[T] {
	return Cat[T]{c: concat(c1.core(), c2.core())}
}

// Uncons splits c into its first element and the rest.
func (c Cat[T]) Uncons() (T, Cat[T], error) {
	x, err := c.Head()
	if err != nil {
		return x, c, err
	}
	return x, Cat[T]{c: c.core().tail()}, nil
}

// Unsnoc splits c into its last element and the rest.
func (c Cat[T]) Unsnoc() (Cat[T], T, error) {
	x, err := c.Last()
	if err != nil {
		return c, x, err
	}
	return Cat[T]{c: c.core().init()}, x, nil
}

// PeekHead returns the first element of c, if any.
func (c Cat[T]) PeekHead() maybe.Maybe[T] {
	x, err := c.Head()
	return maybe.Of(x, err == nil)
}

// PeekLast returns the last element of c, if any.
func (c Cat[T]) PeekLast() maybe.Maybe[T] {
	x, err := c.Last()
	return maybe.Of(x, err == nil)
}

// Items returns the elements of c, in order, as a new slice. O(n).
// c itself is not changed.
func (c Cat[T]) Items() []T {
	var items []T
	for core := c.core(); !core.isEmpty(); core = core.tail() {
		items = append(items, unbox[T](core.head()))
	}
	return items
}
