package earley

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/gconf"

	"github.com/brager/marley"
)

// FailureKind distinguishes the two ways advance can fail.
type FailureKind int

const (
	// NoProgress means the prior state set was already empty when a
	// token arrived: the parse was stuck before this token was even
	// considered.
	NoProgress FailureKind = iota
	// UnexpectedToken means closure over the new token produced an
	// empty state set: every attempted Scanning failed to match.
	UnexpectedToken
)

// Failure reports why advance could not make progress. It satisfies error
// so callers that want to distinguish NoProgress from UnexpectedToken
// programmatically can use errors.As, while Error() still returns a
// plain, human-readable message on its own.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// queued is a work-queue entry: an item together with the state set index
// it was (or will be) enqueued into.
type queued[T any] struct {
	pos  int
	item item[T]
}

// Seed builds the initial chart (before any token has been fed): state set
// 0 contains (startRule, p, 0, [startRule]) for every production p of
// startRule, closed under Prediction.
func Seed[T any](g *marley.Grammar[T], startRule string) (*Chart[T], error) {
	if !g.HasRule(startRule) {
		return nil, fmt.Errorf("marley/earley: start rule %q is not defined in grammar", startRule)
	}
	chart := NewChart[T]()
	queue := make([]queued[T], 0, 16)
	prods, _ := g.RulesOf(startRule)
	for _, p := range prods {
		it := item[T]{head: startRule, remaining: p, origin: 0, tree: &Tree[T]{Head: startRule}}
		if chart.add(0, itemKey(it), it) {
			queue = append(queue, queued[T]{pos: 0, item: it})
		}
	}
	for len(queue) > 0 {
		// LIFO: pop from the back, matching the reference driver.
		q := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		sym, ok := q.item.next()
		if !ok || sym.IsTerminal() {
			continue // Completion/Scanning cannot fire with no token yet
		}
		queue = predict(g, chart, q.pos, sym.Name, queue)
	}
	return chart, nil
}

// Advance computes the next state set of chart by closure under
// Prediction, Scanning and Completion, given that token arrives at
// position. It mutates chart in place and returns it (see the Chart doc
// comment on why in-place mutation satisfies the monotone-growth
// contract), or a *Failure if the parse cannot continue.
func Advance[T any](g *marley.Grammar[T], chart *Chart[T], position int, token T) (*Chart[T], *Failure) {
	prior := position - 1
	priorSet := chart.getSet(prior)
	if priorSet.size() == 0 {
		return chart, &Failure{Kind: NoProgress, Message: "Parser cannot advance"}
	}

	queue := make([]queued[T], 0, priorSet.size())
	priorSet.each(func(it item[T]) {
		queue = append(queue, queued[T]{pos: prior, item: it})
	})

	var expected []string
	seenExpected := make(map[string]bool)
	recordExpected := func(label string) {
		if !seenExpected[label] {
			seenExpected[label] = true
			expected = append(expected, label)
		}
	}

	for len(queue) > 0 {
		q := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		k, it := q.pos, q.item

		if it.complete() {
			queue = complete(chart, k, it, queue)
			continue
		}
		sym, _ := it.next()
		if !sym.IsTerminal() {
			queue = predict(g, chart, k, sym.Name, queue)
			continue
		}
		// Scanning only fires for items sitting exactly at prior;
		// earlier Scanning candidates stay in the chart for
		// Completion to consume later.
		if k != prior {
			continue
		}
		if sym.Matcher.Matches(token) {
			next := it.advance(token)
			key := itemKey(next)
			if chart.add(position, key, next) {
				queue = append(queue, queued[T]{pos: position, item: next})
			}
		} else {
			recordExpected(sym.Matcher.Error())
		}
	}

	if chart.getSet(position).size() == 0 {
		msg := "Expected one of: " + strings.Join(expected, ", ")
		return chart, &Failure{Kind: UnexpectedToken, Message: msg}
	}
	return chart, nil
}

// predict implements the Prediction rule: for every production of name,
// enqueue (name, p, k, [name]) into state set k.
func predict[T any](g *marley.Grammar[T], chart *Chart[T], k int, name string, queue []queued[T]) []queued[T] {
	prods, ok := g.RulesOf(name)
	if !ok {
		fatal(fmt.Sprintf("marley/earley: predicted nonterminal %q is not defined in grammar", name))
		return queue
	}
	for _, p := range prods {
		it := item[T]{head: name, remaining: p, origin: k, tree: &Tree[T]{Head: name}}
		key := itemKey(it)
		if chart.add(k, key, it) {
			queue = append(queue, queued[T]{pos: k, item: it})
		}
	}
	return queue
}

// complete implements the Completion rule: for every item
// (head', [Nonterminal(head), ...rest], origin', tree') in state set
// it.origin, enqueue (head', rest, origin', tree' ++ [it.tree]) into
// state set k.
func complete[T any](chart *Chart[T], k int, it item[T], queue []queued[T]) []queued[T] {
	origin := chart.getSet(it.origin)
	origin.each(func(candidate item[T]) {
		sym, ok := candidate.next()
		if !ok || sym.IsTerminal() || sym.Name != it.head {
			return
		}
		next := candidate.advance(it.tree)
		key := itemKey(next)
		if chart.add(k, key, next) {
			queue = append(queue, queued[T]{pos: k, item: next})
		}
	})
	return queue
}

// fatal reports an internal grammar-consistency error: a nonterminal was
// predicted that the grammar does not define. This can only happen for a
// grammar that slipped past GrammarBuilder.Build's own check (e.g. one
// assembled directly from a literal map). By default it is logged and the
// prediction is skipped; setting the "panic-on-undefined-nonterminal"
// gconf flag turns it into a panic, for debugging a grammar under
// construction, mirroring the gconf-gated panic idiom used elsewhere in
// this stack.
func fatal(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-undefined-nonterminal") {
		panic(msg)
	}
}
