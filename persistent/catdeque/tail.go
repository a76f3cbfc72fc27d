package catdeque

import "github.com/npillmayer/pfds/lazy"

// tail removes the first element of a non-empty cat.
//
// If the front of a deep cat gets too small, it borrows the first chunk of
// level a. If a is empty, the middle deque moves to the front and the first
// chunk of b provides a new middle. If both levels are empty, the remaining
// deques are concatenated.
func (c *cat) tail() *cat {
	if c.shape == shallow {
		return shallowCat(must(c.f.Tail()))
	}
	f := must(c.f.Tail())
	if f.Size() >= minFront {
		return &cat{shape: deep, f: f, a: c.a, m: c.m, b: c.b, r: c.r}
	}
	if a := c.a.Force(); !a.isEmpty() {
		ch := asChunk(a.head())
		if !ch.compound {
			tracer().Debugf("tail: borrowing simple chunk of size %d from a", ch.f.Size())
			return deepCat(dappendL(f, ch.f), lazy.Suspend(a.tail), c.m, c.b, c.r)
		}
		tracer().Debugf("tail: borrowing compound chunk from a")
		rest := lazy.Suspend(func() *cat {
			return concat(ch.m.Force(), a.replaceHead(simple(ch.r)))
		})
		return deepCat(dappendL(f, ch.f), rest, c.m, c.b, c.r)
	}
	if b := c.b.Force(); !b.isEmpty() {
		ch := asChunk(b.head())
		front := dappendL(f, c.m)
		if !ch.compound {
			tracer().Debugf("tail: promoting middle, borrowing simple chunk from b")
			return deepCat(front, emptyLevel, ch.f, lazy.Suspend(b.tail), c.r)
		}
		tracer().Debugf("tail: promoting middle, borrowing compound chunk from b")
		a := lazy.Suspend(func() *cat {
			return ch.m.Force().cons(simple(ch.f))
		})
		return deepCat(front, a, ch.r, lazy.Suspend(b.tail), c.r)
	}
	tracer().Debugf("tail: nested levels exhausted, collapsing")
	return concat(shallowCat(dappendL(f, c.m)), shallowCat(c.r))
}

// init removes the last element of a non-empty cat. It mirrors tail.
func (c *cat) init() *cat {
	if c.shape == shallow {
		return shallowCat(must(c.f.Init()))
	}
	r := must(c.r.Init())
	if r.Size() >= minFront {
		return &cat{shape: deep, f: c.f, a: c.a, m: c.m, b: c.b, r: r}
	}
	if b := c.b.Force(); !b.isEmpty() {
		ch := asChunk(b.last())
		if !ch.compound {
			tracer().Debugf("init: borrowing simple chunk of size %d from b", ch.f.Size())
			return deepCat(c.f, c.a, c.m, lazy.Suspend(b.init), dappendR(ch.f, r))
		}
		tracer().Debugf("init: borrowing compound chunk from b")
		rest := lazy.Suspend(func() *cat {
			return concat(b.replaceLast(simple(ch.f)), ch.m.Force())
		})
		return deepCat(c.f, c.a, c.m, rest, dappendR(ch.r, r))
	}
	if a := c.a.Force(); !a.isEmpty() {
		ch := asChunk(a.last())
		rear := dappendR(c.m, r)
		if !ch.compound {
			tracer().Debugf("init: promoting middle, borrowing simple chunk from a")
			return deepCat(c.f, lazy.Suspend(a.init), ch.f, emptyLevel, rear)
		}
		tracer().Debugf("init: promoting middle, borrowing compound chunk from a")
		b := lazy.Suspend(func() *cat {
			return ch.m.Force().snoc(simple(ch.r))
		})
		return deepCat(c.f, lazy.Suspend(a.init), ch.f, b, rear)
	}
	tracer().Debugf("init: nested levels exhausted, collapsing")
	return concat(shallowCat(c.f), shallowCat(dappendR(c.m, r)))
}
