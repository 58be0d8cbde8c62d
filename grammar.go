package marley

import "fmt"

// Grammar is an immutable mapping from nonterminal name to its list of
// alternative productions. The list preserves alternation order, but
// correctness of parsing never depends on that order.
type Grammar[T any] struct {
	name  string
	rules map[string][]Production[T]
}

// NewGrammar builds a Grammar from a literal mapping of rule name to its
// alternative productions, the plain map-literal form GrammarBuilder is
// sugar over.
func NewGrammar[T any](name string, rules map[string][]Production[T]) *Grammar[T] {
	copied := make(map[string][]Production[T], len(rules))
	for k, v := range rules {
		prods := make([]Production[T], len(v))
		copy(prods, v)
		copied[k] = prods
	}
	return &Grammar[T]{name: name, rules: copied}
}

// Name returns the grammar's descriptive name.
func (g *Grammar[T]) Name() string {
	return g.name
}

// RulesOf returns the alternative productions for name, and whether name is
// defined in the grammar at all.
func (g *Grammar[T]) RulesOf(name string) ([]Production[T], bool) {
	p, ok := g.rules[name]
	return p, ok
}

// HasRule reports whether name is a defined nonterminal.
func (g *Grammar[T]) HasRule(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// --- Builder -----------------------------------------------------------

// GrammarBuilder assembles a Grammar one rule at a time. It is the
// ergonomic counterpart of the grammar literal: NewGrammarBuilder followed
// by a sequence of Rule(...).Term/Nonterm(...).End() calls, then Build.
type GrammarBuilder[T any] struct {
	name  string
	rules map[string][]Production[T]
	order []string
}

// NewGrammarBuilder starts a new grammar under construction, named name
// (used only for diagnostics).
func NewGrammarBuilder[T any](name string) *GrammarBuilder[T] {
	return &GrammarBuilder[T]{
		name:  name,
		rules: make(map[string][]Production[T]),
	}
}

// RuleBuilder accumulates the symbols of a single production for head.
type RuleBuilder[T any] struct {
	b    *GrammarBuilder[T]
	head string
	prod Production[T]
}

// Rule starts a new alternative production for head.
func (b *GrammarBuilder[T]) Rule(head string) *RuleBuilder[T] {
	if _, ok := b.rules[head]; !ok {
		b.order = append(b.order, head)
	}
	return &RuleBuilder[T]{b: b, head: head}
}

// Term appends a terminal symbol matched by m to the production under
// construction.
func (r *RuleBuilder[T]) Term(m Matcher[T]) *RuleBuilder[T] {
	r.prod = append(r.prod, Terminal(m))
	return r
}

// Nonterm appends a nonterminal reference to name to the production under
// construction.
func (r *RuleBuilder[T]) Nonterm(name string) *RuleBuilder[T] {
	r.prod = append(r.prod, Nonterminal[T](name))
	return r
}

// End closes the production (possibly empty, an epsilon-production) and
// adds it as an alternative for its head.
func (r *RuleBuilder[T]) End() *GrammarBuilder[T] {
	r.b.rules[r.head] = append(r.b.rules[r.head], r.prod)
	return r.b
}

// Build finalizes the grammar, checking that startRule is defined and that
// every nonterminal referenced by some production is itself defined
// somewhere in the grammar, an undefined reference here is a construction
// error the caller can act on, distinct from the runtime-fatal assertion
// in the engine for grammars that somehow bypass this check.
func (b *GrammarBuilder[T]) Build(startRule string) (*Grammar[T], error) {
	if _, ok := b.rules[startRule]; !ok {
		return nil, fmt.Errorf("marley: start rule %q is not defined in grammar %q", startRule, b.name)
	}
	for head, prods := range b.rules {
		for _, p := range prods {
			for _, sym := range p {
				if !sym.IsTerminal() {
					if _, ok := b.rules[sym.Name]; !ok {
						return nil, fmt.Errorf("marley: rule %q references undefined nonterminal %q", head, sym.Name)
					}
				}
			}
		}
	}
	return NewGrammar(b.name, b.rules), nil
}
