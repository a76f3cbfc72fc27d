package catdeque

import (
	"github.com/npillmayer/pfds/lazy"
	"github.com/npillmayer/pfds/persistent/deque"
)

/*
Remarks:
--------

- The nesting Cat[T] → Cat[chunk of T] → Cat[chunk of chunk of T] … is unbounded,
  which Go generics cannot instantiate. The recursive core therefore works on
  untyped elements: level 0 holds the client's values, every deeper level
  holds *chunk values. Type Cat[T] is a typed facade for the core.

- Every core value is immutable after construction. Functions return new
  values and share everything they do not change.

*/

// Size thresholds. A deep cat keeps at least minFront elements in front and
// rear; shallow deques shorter than minSplice are merged by copying instead of
// being spliced.
const (
	minFront  = 3
	minSplice = 4
)

type seq = deque.Deque[any]

// level is a suspended nested cat of chunks.
type level = *lazy.Suspension[*cat]

type shape uint8

const (
	shallow shape = iota
	deep
)

// cat is the untyped core of a catenable deque.
//
// For shallow cats, f is the only deque in use. Deep cats hold
//
//	f · a · m · b · r
//
// with |f| ≥ 3, |m| ≥ 2, |r| ≥ 3.
type cat struct {
	shape shape
	f     seq
	a     level
	m     seq
	b     level
	r     seq
}

// emptyCat is the single empty cat. All empty results are represented by it.
var emptyCat = &cat{}

// emptyLevel is an evaluated empty nested level, shared by all cats.
var emptyLevel = lazy.Value(emptyCat)

func shallowCat(d seq) *cat {
	if d.IsEmpty() {
		return emptyCat
	}
	return &cat{shape: shallow, f: d}
}

func deepCat(f seq, a level, m seq, b level, r seq) *cat {
	assertThat(f.Size() >= minFront && r.Size() >= minFront,
		"deep cat with front/rear of size %d/%d", f.Size(), r.Size())
	return &cat{shape: deep, f: f, a: a, m: m, b: b, r: r}
}

func (c *cat) isEmpty() bool {
	return c.shape == shallow && c.f.IsEmpty()
}

// chunk is an element of a nested level: either simple, holding a single
// deque in f, or compound, holding f · m · r.
type chunk struct {
	compound bool
	f        seq
	m        level
	r        seq
}

func simple(d seq) *chunk {
	return &chunk{f: d}
}

func compound(f seq, m level, r seq) *chunk {
	return &chunk{compound: true, f: f, m: m, r: r}
}

func asChunk(x any) *chunk {
	ch, ok := x.(*chunk)
	assertThat(ok, "nested level holds %T instead of a chunk", x)
	return ch
}

// --- End operations --------------------------------------------------------

func (c *cat) cons(x any) *cat {
	if c.shape == shallow {
		return &cat{shape: shallow, f: c.f.Cons(x)}
	}
	return &cat{shape: deep, f: c.f.Cons(x), a: c.a, m: c.m, b: c.b, r: c.r}
}

func (c *cat) snoc(x any) *cat {
	if c.shape == shallow {
		return &cat{shape: shallow, f: c.f.Snoc(x)}
	}
	return &cat{shape: deep, f: c.f, a: c.a, m: c.m, b: c.b, r: c.r.Snoc(x)}
}

// head and last must not be called for an empty cat.
func (c *cat) head() any {
	return must(c.f.Head())
}

func (c *cat) last() any {
	if c.shape == shallow {
		return must(c.f.Last())
	}
	return must(c.r.Last())
}

// replaceHead exchanges the first element of a non-empty cat.
func (c *cat) replaceHead(x any) *cat {
	f := must(c.f.Tail()).Cons(x)
	if c.shape == shallow {
		return &cat{shape: shallow, f: f}
	}
	return &cat{shape: deep, f: f, a: c.a, m: c.m, b: c.b, r: c.r}
}

// replaceLast exchanges the last element of a non-empty cat.
func (c *cat) replaceLast(x any) *cat {
	if c.shape == shallow {
		return &cat{shape: shallow, f: must(c.f.Init()).Snoc(x)}
	}
	return &cat{shape: deep, f: c.f, a: c.a, m: c.m, b: c.b, r: must(c.r.Init()).Snoc(x)}
}

// --- Deque helpers ---------------------------------------------------------

// dappendL prepends all elements of f to r. O(|f|), used for small f only.
func dappendL(f, r seq) seq {
	for !f.IsEmpty() {
		r = r.Cons(must(f.Last()))
		f = must(f.Init())
	}
	return r
}

// dappendR appends all elements of r to f. O(|r|), used for small r only.
func dappendR(f, r seq) seq {
	for !r.IsEmpty() {
		f = f.Snoc(must(r.Head()))
		r = must(r.Tail())
	}
	return f
}

// share moves the last element of f and the first element of r into a new
// two-element middle deque.
func share(f, r seq) (seq, seq, seq) {
	m := deque.Empty[any]().Cons(must(r.Head())).Cons(must(f.Last()))
	return must(f.Init()), m, must(r.Tail())
}
