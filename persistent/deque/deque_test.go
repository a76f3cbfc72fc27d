package deque

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pfds/lazy"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDequeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	var d Deque[int]
	if !d.IsEmpty() || d.Size() != 0 {
		t.Fatalf("expected zero deque to be empty, has size %d", d.Size())
	}
	if _, err := d.Head(); !errors.Is(err, ErrEmptyDeque) {
		t.Errorf("expected Head of empty deque to fail with ErrEmptyDeque, is %v", err)
	}
	if _, err := d.Last(); !errors.Is(err, ErrEmptyDeque) {
		t.Errorf("expected Last of empty deque to fail with ErrEmptyDeque, is %v", err)
	}
	if _, err := d.Tail(); !errors.Is(err, ErrEmptyDeque) {
		t.Errorf("expected Tail of empty deque to fail with ErrEmptyDeque, is %v", err)
	}
	if _, err := d.Init(); !errors.Is(err, ErrEmptyDeque) {
		t.Errorf("expected Init of empty deque to fail with ErrEmptyDeque, is %v", err)
	}
	if !d.PeekHead().IsNothing() || !d.PeekLast().IsNothing() {
		t.Error("expected peeking into empty deque to yield Nothing")
	}
}

func TestDequeSingleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	for _, d := range []Deque[string]{Empty[string]().Cons("x"), Empty[string]().Snoc("x")} {
		h, _ := d.Head()
		l, _ := d.Last()
		if h != "x" || l != "x" {
			t.Errorf("expected head and last to be x, are %q and %q", h, l)
		}
		tl, err := d.Tail()
		if err != nil || !tl.IsEmpty() {
			t.Errorf("expected tail of singleton to be empty, is %v (err=%v)", tl.Items(), err)
		}
		in, err := d.Init()
		if err != nil || !in.IsEmpty() {
			t.Errorf("expected init of singleton to be empty, is %v (err=%v)", in.Items(), err)
		}
	}
}

func TestDequeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	d := Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	for i := 1; i <= 10; i++ {
		x, err := d.Head()
		if err != nil || x != i {
			t.Fatalf("expected head #%d to be %d, is %d (err=%v)", i, i, x, err)
		}
		checkBalance(t, d)
		d, _ = d.Tail()
	}
	if !d.IsEmpty() {
		t.Errorf("expected deque to be drained, has size %d", d.Size())
	}
	d = Empty[int]()
	for i := 1; i <= 10; i++ {
		d = d.Cons(i)
	}
	for i := 1; i <= 10; i++ {
		x, _ := d.Last()
		if x != i {
			t.Fatalf("expected last #%d to be %d, is %d", i, i, x)
		}
		d, _ = d.Init()
	}
}

func TestDequeReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	d := Of(1, 2, 3, 4, 5, 6, 7).Cons(0)
	r := d.Reverse()
	expectItems(t, r, []int{7, 6, 5, 4, 3, 2, 1, 0})
	expectItems(t, r.Reverse(), []int{0, 1, 2, 3, 4, 5, 6, 7})
	expectItems(t, d, []int{0, 1, 2, 3, 4, 5, 6, 7})
}

// TestDequeModel runs random operations on random versions of deques and
// compares every version against a slice model at the end.
func TestDequeModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	type version struct {
		d     Deque[int]
		model []int
	}
	rnd := rand.New(rand.NewSource(4711))
	versions := []version{{}}
	for step := 0; step < 3000; step++ {
		v := versions[rnd.Intn(len(versions))]
		var w version
		switch op := rnd.Intn(6); {
		case op == 0 || op == 1:
			w = version{v.d.Cons(step), append([]int{step}, v.model...)}
		case op == 2 || op == 3:
			w = version{v.d.Snoc(step), append(clone(v.model), step)}
		case op == 4 && len(v.model) > 0:
			d, err := v.d.Tail()
			if err != nil {
				t.Fatalf("step %d: tail failed: %v", step, err)
			}
			w = version{d, clone(v.model[1:])}
		case op == 5 && len(v.model) > 0:
			d, err := v.d.Init()
			if err != nil {
				t.Fatalf("step %d: init failed: %v", step, err)
			}
			w = version{d, clone(v.model[:len(v.model)-1])}
		default:
			continue
		}
		if w.d.Size() != len(w.model) {
			t.Fatalf("step %d: expected size %d, is %d", step, len(w.model), w.d.Size())
		}
		if len(w.model) > 0 {
			h, _ := w.d.Head()
			l, _ := w.d.Last()
			if h != w.model[0] || l != w.model[len(w.model)-1] {
				t.Fatalf("step %d: expected ends %d…%d, are %d…%d",
					step, w.model[0], w.model[len(w.model)-1], h, l)
			}
		}
		checkBalance(t, w.d)
		versions = append(versions, w)
	}
	for i, v := range versions {
		if !equal(v.d.Items(), v.model) {
			t.Fatalf("version %d: expected %v, is %v", i, v.model, v.d.Items())
		}
	}
}

// TestDequeConstantWork checks that no single operation runs more than a
// constant number of suspended computations, however long the deque is.
func TestDequeConstantWork(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const limit = 100
	var d Deque[int]
	worst := uint64(0)
	measure := func(op func()) {
		before := lazy.Statistics()
		op()
		if n := lazy.Statistics().Sub(before).Evaluations; n > worst {
			worst = n
		}
	}
	for i := 0; i < 5000; i++ {
		measure(func() { d = d.Snoc(i) })
	}
	for i := 0; i < 2500; i++ {
		measure(func() { d, _ = d.Tail() })
		measure(func() { d = d.Cons(i) })
		measure(func() { d, _ = d.Init() })
	}
	for !d.IsEmpty() {
		measure(func() { d, _ = d.Tail() })
	}
	t.Logf("worst single operation ran %d computations", worst)
	if worst > limit {
		t.Errorf("expected at most %d computations per operation, worst was %d", limit, worst)
	}
}

// --- Helpers ---------------------------------------------------------------

func checkBalance[T any](t *testing.T, d Deque[T]) {
	t.Helper()
	if d.lenf > balance*d.lenr+1 || d.lenr > balance*d.lenf+1 {
		t.Fatalf("deque out of balance: |front|=%d, |rear|=%d", d.lenf, d.lenr)
	}
}

func expectItems(t *testing.T, d Deque[int], items []int) {
	t.Helper()
	if got := d.Items(); !equal(got, items) {
		t.Errorf("expected deque to hold %v, holds %v", items, got)
	}
}

func clone(xs []int) []int {
	return append([]int(nil), xs...)
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
