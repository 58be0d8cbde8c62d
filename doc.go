/*
Package marley provides grammar types and token-matchers for an incremental
Earley parser.

Earley's algorithm recognizes arbitrary context-free grammars, ambiguous
ones included, without the restrictions recursive-descent or LR parsers
impose on their input grammars. This package holds the grammar-side half of
that story: symbols, productions, and the matchers that decide whether a
token satisfies a terminal. The parsing engine itself, together with the
Parser façade, lives in the sibling package marley/earley; see its doc
comment for the incremental-feeding API (MakeMarley, Parser.Feed, ...).

A grammar is built either from a literal map of productions or with
GrammarBuilder, a small fluent API modeled after the rule-at-a-time style
familiar from LR grammar builders:

	b := marley.NewGrammarBuilder[string]("parens")
	b.Rule("parens").End()
	b.Rule("parens").Term(marley.Exactly("(")).Nonterm("parens").Term(marley.Exactly(")")).End()
	g, err := b.Build("parens")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package marley
