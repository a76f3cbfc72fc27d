/*
Package catdeque implements persistent catenable double-ended queues.

A catenable deque supports insertion and removal at both ends and, in
addition, concatenation of two deques. Every operation, concatenation
included, runs in O(1) amortized time, and the bound holds even if old
versions of a deque are used again (full persistence).

The implementation follows the catenable deques of Chris Okasaki's “Purely
Functional Data Structures” (section 11.2). A catenable deque is either
shallow, wrapping a single primitive deque, or deep, consisting of

	front · a · middle · b · rear

where front, middle and rear are primitive deques and a and b are suspended
catenable deques of chunks. A chunk is either simple (a primitive deque) or
compound (a primitive deque, a suspended catenable deque of chunks and another
primitive deque). Removing elements from a front which has become too small
borrows a chunk from the next level; concatenation splices the two deques by
pushing new compound chunks to the next level. Both defer the work on the
nested levels behind suspensions (see package lazy), which are paid for by
later operations.

The zero value of Cat is an empty deque:

	var c catdeque.Cat[int]
	c = c.Snoc(2).Snoc(3).Cons(1)
	d := c.Concat(catdeque.Of(4, 5, 6))   // 1 2 3 4 5 6
	x, err := d.Head()                    // 1, nil

Removing from or reading from an empty deque fails with ErrEmptyCat.

Catenable deques are immutable and safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catdeque

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.catdeque'.
func tracer() tracing.Trace {
	return tracing.Select("fp.catdeque")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(errors.AssertionFailedf("catdeque: %s", fmt.Sprintf(msg, msgargs...)))
	}
}

// must unwraps the result of a primitive deque operation. The core never
// reads from an empty primitive deque, so an error here is a bug.
func must[T any](x T, err error) T {
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "catdeque: primitive deque used while empty"))
	}
	return x
}
