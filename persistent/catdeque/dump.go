package catdeque

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the recursive shape of c as a tree, for debugging.
//
// Dump never forces a nested level: levels which have not been evaluated yet
// are printed as suspended. Deques of the outermost level are
// printed with their elements, deques of nested levels with their chunks.
func (c Cat[T]) Dump() string {
	printer := tp.New()
	dumpCat(printer, c.core(), 0)
	return printer.String()
}

// dumpCat prints a cat whose elements live at nesting depth `depth`;
// depth 0 holds client values, deeper levels hold chunks.
func dumpCat(printer tp.Tree, c *cat, depth int) {
	if c.shape == shallow {
		dumpSeq(printer, "shallow", c.f, depth)
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("deep@%d", depth))
	dumpSeq(branch, "f", c.f, depth)
	dumpLevel(branch, "a", c.a, depth+1)
	dumpSeq(branch, "m", c.m, depth)
	dumpLevel(branch, "b", c.b, depth+1)
	dumpSeq(branch, "r", c.r, depth)
}

func dumpLevel(printer tp.Tree, label string, l level, depth int) {
	if !l.Evaluated() {
		printer.AddNode(label + " ⟨suspended⟩")
		return
	}
	nested := l.Force()
	if nested.isEmpty() {
		printer.AddNode(label + " ∅")
		return
	}
	dumpCat(printer.AddBranch(label), nested, depth)
}

func dumpSeq(printer tp.Tree, label string, d seq, depth int) {
	if depth == 0 {
		printer.AddNode(fmt.Sprintf("%s %v", label, d.Items()))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("%s %d chunk(s)", label, d.Size()))
	for _, x := range d.Items() {
		ch := asChunk(x)
		if !ch.compound {
			dumpSeq(branch, "simple", ch.f, depth-1)
			continue
		}
		cmpd := branch.AddBranch("compound")
		dumpSeq(cmpd, "f", ch.f, depth-1)
		dumpLevel(cmpd, "m", ch.m, depth)
		dumpSeq(cmpd, "r", ch.r, depth-1)
	}
}
