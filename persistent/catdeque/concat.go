package catdeque

import "github.com/npillmayer/pfds/lazy"

// concat splices two cats. All work on nested levels is suspended.
func concat(c1, c2 *cat) *cat {
	switch {
	case c1.isEmpty():
		return c2
	case c2.isEmpty():
		return c1
	}
	switch {
	case c1.shape == shallow && c2.shape == shallow:
		if c1.f.Size() < minSplice {
			return shallowCat(dappendL(c1.f, c2.f))
		}
		if c2.f.Size() < minSplice {
			return shallowCat(dappendR(c1.f, c2.f))
		}
		f, m, r := share(c1.f, c2.f)
		return deepCat(f, emptyLevel, m, emptyLevel, r)
	case c1.shape == shallow:
		if c1.f.Size() < minSplice {
			return deepCat(dappendL(c1.f, c2.f), c2.a, c2.m, c2.b, c2.r)
		}
		a, f := c2.a, c2.f
		pushed := lazy.Suspend(func() *cat {
			return a.Force().cons(simple(f))
		})
		return deepCat(c1.f, pushed, c2.m, c2.b, c2.r)
	case c2.shape == shallow:
		if c2.f.Size() < minSplice {
			return deepCat(c1.f, c1.a, c1.m, c1.b, dappendR(c1.r, c2.f))
		}
		b, r := c1.b, c1.r
		pushed := lazy.Suspend(func() *cat {
			return b.Force().snoc(simple(r))
		})
		return deepCat(c1.f, c1.a, c1.m, pushed, c2.f)
	}
	tracer().Debugf("concat: splicing two deep cats")
	rprime, m, fprime := share(c1.r, c2.f)
	a := lazy.Suspend(func() *cat {
		return c1.a.Force().snoc(compound(c1.m, c1.b, rprime))
	})
	b := lazy.Suspend(func() *cat {
		return c2.b.Force().cons(compound(fprime, c2.a, c2.m))
	})
	return deepCat(c1.f, a, m, b, c2.r)
}
