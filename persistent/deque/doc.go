/*
Package deque implements a persistent (immutable) double-ended queue with
worst-case O(1) access at both ends.

The implementation follows the real-time deque of Chris Okasaki's
“Purely Functional Data Structures” (section 8.4.3). Elements live in two lazy
streams, front and rear. Whenever one of them grows longer than c times the
other plus one, the deque is rebuilt; the rebuild is lazy and is paid for
incrementally by forcing a couple of stream cells (the “schedules”) on every
subsequent operation. This makes every operation O(1) in the worst case, even
if old versions of a deque are used again.

The zero value of Deque is an empty deque:

	var d deque.Deque[int]
	d = d.Snoc(1).Snoc(2).Cons(0)
	x, _ := d.Head() // 0

Deques are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.deque'.
func tracer() tracing.Trace {
	return tracing.Select("fp.deque")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.AssertionFailedf("deque: %s", fmt.Sprintf(msg, msgargs...)))
	}
}
