/*
Package lazy implements suspensions, i.e. memoized deferred computations.

A suspension wraps a computation which is run at most once, on the first
call to Force. Every later call, by whatever holder of the suspension, returns
the cached result. Persistent data structures use suspensions to defer
re-balancing work and to pay for it gradually; the memoization is what makes
amortized bounds hold even if old versions of a structure are re-used.

Suspensions are safe for concurrent use. The result cell is a single-assignment
cell guarded by an atomic compare-and-swap: if two goroutines force the same
suspension at the same time, both may run the computation, but only one result
is stored and both observe that result.

	s := lazy.Suspend(func() int { return expensive() })
	x := s.Force() // runs expensive()
	y := s.Force() // cached, x == y

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lazy

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.lazy'.
func tracer() tracing.Trace {
	return tracing.Select("fp.lazy")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.AssertionFailedf("lazy: %s", fmt.Sprintf(msg, msgargs...)))
	}
}
