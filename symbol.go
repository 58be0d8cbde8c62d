package marley

import "fmt"

// SymbolKind distinguishes the two cases of Symbol.
type SymbolKind int

const (
	// TERMINAL symbols carry a Matcher and are satisfied by a single token.
	TERMINAL SymbolKind = iota
	// NONTERMINAL symbols carry a rule Name and are expanded by Prediction.
	NONTERMINAL
)

func (k SymbolKind) String() string {
	if k == TERMINAL {
		return "TERMINAL"
	}
	return "NONTERMINAL"
}

// Symbol is a tagged variant: either a Terminal wrapping a Matcher, or a
// Nonterminal naming another rule in the grammar.
type Symbol[T any] struct {
	Kind    SymbolKind
	Matcher Matcher[T] // set iff Kind == TERMINAL
	Name    string     // set iff Kind == NONTERMINAL
}

// Terminal builds a Symbol recognized by matcher m.
func Terminal[T any](m Matcher[T]) Symbol[T] {
	return Symbol[T]{Kind: TERMINAL, Matcher: m}
}

// Nonterminal builds a Symbol referring to the grammar rule named name.
func Nonterminal[T any](name string) Symbol[T] {
	return Symbol[T]{Kind: NONTERMINAL, Name: name}
}

// IsTerminal reports whether s is a Terminal symbol.
func (s Symbol[T]) IsTerminal() bool {
	return s.Kind == TERMINAL
}

func (s Symbol[T]) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("'%s'", s.Matcher.Error())
	}
	return s.Name
}

// Key is the canonical string for s, used when building a chart
// deduplication key for the production suffix an item still has to match.
func (s Symbol[T]) Key() string {
	if s.IsTerminal() {
		return "T:" + s.Matcher.Key()
	}
	return "N:" + s.Name
}

// Production is an ordered, possibly empty, sequence of symbols.
type Production[T any] []Symbol[T]

func (p Production[T]) String() string {
	if len(p) == 0 {
		return "ε"
	}
	s := ""
	for i, sym := range p {
		if i > 0 {
			s += " "
		}
		s += sym.String()
	}
	return s
}
