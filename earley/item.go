/*
Package earley implements an incremental Earley parser: a chart parser
that consumes tokens one at a time and, at every point, can report whether
the input so far is a prefix of some accepted string, whether it is
already accepted, or whether the next token made further progress
impossible.

The grammar and token-matching types this package operates on live in the
parent package marley; this package holds the chart, the three Earley
inference rules (Prediction, Scanning, Completion), and the incremental
driver and Parser façade built on top of them.

A discussion of the algorithm, very close to the shape implemented here,
may be found in Loup Vaillant's Earley-parsing tutorial
(http://loup-vaillant.fr/tutorials/earley-parsing/). Unlike that tutorial
(and unlike the sibling gorgo/lr/earley package this one is grounded on),
parse trees here are accumulated directly on each item as it is derived,
rather than reconstructed by walking the chart backwards after acceptance.
Simpler, at the cost of carrying a tree on every item, including ones
that never make it into a final parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package earley

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/brager/marley"
)

// tracer traces with key 'marley.earley'.
func tracer() tracing.Trace {
	return tracing.Select("marley.earley")
}

// Tree is a partial (or, once a parse completes, complete) parse tree: a
// node labeled with the nonterminal that produced it, followed by its
// children in left-to-right order. Each child is either a scanned token
// (of type T) or a completed sub-Tree.
type Tree[T any] struct {
	Head     string
	Children []any // each element is T or *Tree[T]
}

func (t *Tree[T]) String() string {
	if t == nil {
		return "<nil>"
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		if sub, ok := c.(*Tree[T]); ok {
			parts[i] = sub.String()
		} else {
			parts[i] = fmt.Sprintf("%v", c)
		}
	}
	return fmt.Sprintf("(%s %s)", t.Head, strings.Join(parts, " "))
}

// item is an Earley item: (head, remaining, origin, tree). remaining is
// the suffix of the production that is yet to be matched; an empty
// remaining means the item is complete.
type item[T any] struct {
	head      string
	remaining marley.Production[T]
	origin    int
	tree      *Tree[T]
}

// complete reports whether the item's production has been matched in
// full.
func (it item[T]) complete() bool {
	return len(it.remaining) == 0
}

// next returns the first symbol of remaining, or the zero Symbol and false
// if the item is complete.
func (it item[T]) next() (marley.Symbol[T], bool) {
	if it.complete() {
		var zero marley.Symbol[T]
		return zero, false
	}
	return it.remaining[0], true
}

// advance returns a copy of it with the first remaining symbol consumed
// and child appended to the tree.
func (it item[T]) advance(child any) item[T] {
	return item[T]{
		head:      it.head,
		remaining: it.remaining[1:],
		origin:    it.origin,
		tree:      &Tree[T]{Head: it.tree.Head, Children: append(append([]any(nil), it.tree.Children...), child)},
	}
}

func (it item[T]) String() string {
	return fmt.Sprintf("[%s -> %s, %d]", it.head, it.remaining, it.origin)
}
