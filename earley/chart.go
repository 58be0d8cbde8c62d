package earley

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
)

// stateSet holds the Earley items derived for one chart position. Order of
// insertion is preserved (needed both for the work-queue discipline and
// for deterministic completedHeads output); membership is tracked by a
// canonical string key so that re-adding an already-present item is a
// no-op, which is what makes the fixed-point closure terminate on
// recursive grammars.
type stateSet[T any] struct {
	items *arraylist.List
	seen  *hashset.Set
}

func newStateSet[T any]() *stateSet[T] {
	return &stateSet[T]{
		items: arraylist.New(),
		seen:  hashset.New(),
	}
}

func (s *stateSet[T]) contains(key string) bool {
	return s.seen.Contains(key)
}

// add inserts it under key, returning false if it was already present.
func (s *stateSet[T]) add(key string, it item[T]) bool {
	if s.seen.Contains(key) {
		return false
	}
	s.seen.Add(key)
	s.items.Add(it)
	return true
}

func (s *stateSet[T]) size() int {
	return s.items.Size()
}

// each calls fn for every item currently in the set, in insertion order.
// It iterates over a copy of the items taken when it is called, so fn may
// add to the set (complete does, when an item completes at its own
// origin); items added during the call are not visited by it.
func (s *stateSet[T]) each(fn func(item[T])) {
	for _, v := range s.items.Values() {
		fn(v.(item[T]))
	}
}

func (s *stateSet[T]) at(i int) item[T] {
	v, _ := s.items.Get(i)
	return v.(item[T])
}

// Chart is the ordered sequence of state sets produced by an incremental
// parse. Chart operations mutate the receiver in place; a
// state set only ever grows as more tokens arrive, so in-place mutation
// is equivalent to a logically immutable chart for the single-owner,
// non-concurrent use the Parser facade makes of it.
type Chart[T any] struct {
	sets []*stateSet[T]
}

// NewChart creates an empty chart (length 0).
func NewChart[T any]() *Chart[T] {
	return &Chart[T]{}
}

// Len returns the number of state sets currently in the chart.
func (c *Chart[T]) Len() int {
	return len(c.sets)
}

// getSet returns state set k, creating it (and any sets up to and
// including k) if it does not yet exist. Extending k == len(chart)
// appends a new, empty state set.
func (c *Chart[T]) getSet(k int) *stateSet[T] {
	for k >= len(c.sets) {
		c.sets = append(c.sets, newStateSet[T]())
	}
	return c.sets[k]
}

// GetSet returns state set k, or an empty set if k == Len(). Exposed for
// inspection/testing; the engine uses the unexported getSet which also
// grows the chart.
func (c *Chart[T]) GetSet(k int) []any {
	if k >= len(c.sets) {
		return nil
	}
	out := make([]any, 0, c.sets[k].size())
	c.sets[k].each(func(it item[T]) { out = append(out, it) })
	return out
}

// contains reports whether item with the given key is already present in
// state set k.
func (c *Chart[T]) contains(k int, key string) bool {
	if k >= len(c.sets) {
		return false
	}
	return c.sets[k].contains(key)
}

// add inserts it into state set k under key, growing the chart if
// necessary. It reports whether the item was newly added.
func (c *Chart[T]) add(k int, key string, it item[T]) bool {
	return c.getSet(k).add(key, it)
}

// CompletedHeadsAt returns every (head, tree) pair in state set k whose
// item is complete and originated at position 0, the candidate top-level
// parses after k tokens.
func (c *Chart[T]) CompletedHeadsAt(k int) []struct {
	Head string
	Tree *Tree[T]
} {
	var out []struct {
		Head string
		Tree *Tree[T]
	}
	if k >= len(c.sets) {
		return out
	}
	c.sets[k].each(func(it item[T]) {
		if it.complete() && it.origin == 0 {
			out = append(out, struct {
				Head string
				Tree *Tree[T]
			}{Head: it.head, Tree: it.tree})
		}
	})
	return out
}

// --- item keys ----------------------------------------------------------

// itemKey builds the canonical deduplication key for it: a hash folding in
// head, the remaining production suffix, origin and the tree accumulated
// so far, so that two items are considered equal iff all four fields
// match.
func itemKey[T any](it item[T]) string {
	remaining := make([]string, len(it.remaining))
	for i, sym := range it.remaining {
		remaining[i] = sym.Key()
	}
	snapshot := struct {
		Head      string
		Remaining string
		Origin    int
		Tree      string
	}{
		Head:      it.head,
		Remaining: strings.Join(remaining, ","),
		Origin:    it.origin,
		Tree:      treeKey(it.tree),
	}
	h, err := structhash.Hash(snapshot, 1)
	if err != nil {
		// structhash only fails on unhashable reflect kinds (funcs,
		// chans); a Tree built from comparable tokens never produces
		// one, so this would indicate a grammar error, not bad input.
		panic(fmt.Sprintf("marley/earley: could not hash item %s: %v", it, err))
	}
	return h
}

func treeKey[T any](t *Tree[T]) string {
	if t == nil {
		return "-"
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		if sub, ok := c.(*Tree[T]); ok {
			parts[i] = treeKey(sub)
		} else {
			parts[i] = fmt.Sprintf("%v", c)
		}
	}
	return t.Head + "(" + strings.Join(parts, ",") + ")"
}
