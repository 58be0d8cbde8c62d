package marley

import "fmt"

// Matcher is a predicate over a token, abstracting a terminal symbol. The
// engine never inspects a token directly; a Matcher is the only bridge
// between the token domain and the grammar.
//
// Two matchers built from equal arguments must produce equal Key()s, so
// that Earley items referencing them can be deduplicated by the chart (see
// marley/earley). Matches and Error must be pure functions of their
// receiver and argument.
type Matcher[T any] interface {
	// Matches reports whether token satisfies this terminal.
	Matches(token T) bool
	// Error returns a short human-readable label for this terminal, used
	// to assemble "expected one of ..." diagnostics.
	Error() string
	// Key returns a canonical, value-like string identifying this
	// matcher, used for hashing and equality during chart deduplication.
	Key() string
}

// exactMatcher matches a token by value equality against a fixed value.
type exactMatcher[T comparable] struct {
	value T
}

// Exactly builds a Matcher that matches iff the incoming token equals v.
func Exactly[T comparable](v T) Matcher[T] {
	return exactMatcher[T]{value: v}
}

func (m exactMatcher[T]) Matches(token T) bool {
	return token == m.value
}

func (m exactMatcher[T]) Error() string {
	return fmt.Sprintf("exactly %v", m.value)
}

func (m exactMatcher[T]) Key() string {
	return fmt.Sprintf("exact:%v", m.value)
}

// Tagged is implemented by tokens that carry a tag, for use with the Tag
// matcher. TaggedToken is the ready-made concrete type; clients may also
// satisfy Tagged directly on their own token types.
type Tagged interface {
	TagOf() string
}

// TaggedToken is a small (tag, payload) pair, the "pair whose first field"
// that the Tag matcher looks for when the token itself isn't a bare string.
type TaggedToken struct {
	Tag   string
	Value any
}

// TagOf implements Tagged.
func (t TaggedToken) TagOf() string {
	return t.Tag
}

// tagMatcher matches a bare string equal to tag, or any Tagged token whose
// TagOf() equals tag.
type tagMatcher struct {
	tag string
}

// Tag builds a Matcher over `any`-typed tokens: it matches iff the token
// equals the string tag, or the token is a Tagged pair whose TagOf()
// equals tag. Tag only makes sense for a parser instantiated over T = any,
// since it must accept both shapes of token.
func Tag(tag string) Matcher[any] {
	return tagMatcher{tag: tag}
}

func (m tagMatcher) Matches(token any) bool {
	switch t := token.(type) {
	case string:
		return t == m.tag
	case Tagged:
		return t.TagOf() == m.tag
	default:
		return false
	}
}

func (m tagMatcher) Error() string {
	return fmt.Sprintf("tag %s", m.tag)
}

func (m tagMatcher) Key() string {
	return fmt.Sprintf("tag:%s", m.tag)
}
