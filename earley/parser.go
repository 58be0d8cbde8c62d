package earley

import (
	"github.com/google/uuid"

	"github.com/brager/marley"
)

// Parser is a stateful, incremental Earley parser: it owns the current
// chart and position, and exposes Feed/FeedMany/Finished/Failed/Results
// as the only way to interact with a parse in progress.
//
// A Parser is single-threaded and non-blocking: Feed is synchronous and
// must not be called concurrently with itself or with the read methods.
// It is not safe for concurrent use from multiple goroutines.
type Parser[T any] struct {
	grammar   *marley.Grammar[T]
	startRule string
	chart     *Chart[T]
	position  int
	failure   *Failure
	sessionID uuid.UUID
}

// MakeMarley builds an incremental Earley parser for grammar, starting
// recognition at startRule. It returns an error if startRule is not
// defined in grammar, a construction-time user error, distinct from the
// runtime-fatal assertion for a grammar that references an undefined
// nonterminal somewhere deeper (see predict's fatal helper).
func MakeMarley[T any](grammar *marley.Grammar[T], startRule string) (*Parser[T], error) {
	chart, err := Seed(grammar, startRule)
	if err != nil {
		return nil, err
	}
	p := &Parser[T]{
		grammar:   grammar,
		startRule: startRule,
		chart:     chart,
		position:  0,
		sessionID: uuid.New(),
	}
	tracer().Debugf("[%s] new parser for grammar %q, start rule %q", p.sessionID, grammar.Name(), startRule)
	return p, nil
}

// Feed advances the parse by one token. If the parser has already failed,
// Feed is a no-op. On failure, the reason is recorded and the position is
// left at the value where failure was detected; there is no rollback.
func (p *Parser[T]) Feed(token T) {
	if p.failure != nil {
		return
	}
	p.position++
	chart, failure := Advance(p.grammar, p.chart, p.position, token)
	p.chart = chart
	if failure != nil {
		tracer().Infof("[%s] feed #%d failed: %s", p.sessionID, p.position, failure.Message)
		p.failure = failure
		return
	}
	tracer().Debugf("[%s] feed #%d ok, %d item(s) in frontier", p.sessionID, p.position, p.chart.getSet(p.position).size())
}

// FeedMany feeds tokens in order, stopping the effect of further tokens
// once the parser has failed (it still iterates over the remainder
// harmlessly, since Feed is a no-op once failed).
func (p *Parser[T]) FeedMany(tokens []T) {
	for _, tok := range tokens {
		p.Feed(tok)
	}
}

// Failed reports whether a failure has been recorded.
func (p *Parser[T]) Failed() bool {
	return p.failure != nil
}

// GetFailure returns the recorded failure reason, and whether one exists.
func (p *Parser[T]) GetFailure() (string, bool) {
	if p.failure == nil {
		return "", false
	}
	return p.failure.Message, true
}

// FailureKind returns the kind of the recorded failure, and whether one
// exists. Lets callers distinguish NoProgress from UnexpectedToken
// without parsing the message.
func (p *Parser[T]) FailureKind() (FailureKind, bool) {
	if p.failure == nil {
		return 0, false
	}
	return p.failure.Kind, true
}

// Finished reports whether a completed item (startRule, [], 0, _) exists
// in the current state set, i.e. whether the input fed so far is a
// complete, accepted sentence of the grammar.
func (p *Parser[T]) Finished() bool {
	for _, h := range p.chart.CompletedHeadsAt(p.position) {
		if h.Head == p.startRule {
			return true
		}
	}
	return false
}

// Results returns every parse tree from completed top-level items at the
// current position. More than one entry indicates an ambiguous parse.
func (p *Parser[T]) Results() []*Tree[T] {
	var out []*Tree[T]
	for _, h := range p.chart.CompletedHeadsAt(p.position) {
		if h.Head == p.startRule {
			out = append(out, h.Tree)
		}
	}
	return out
}

// Position returns the number of tokens fed so far.
func (p *Parser[T]) Position() int {
	return p.position
}
