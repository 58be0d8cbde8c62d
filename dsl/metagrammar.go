/*
Package dsl is the grammar-DSL reducer: a tree-walker that converts a
parse tree of DSL productions back into the engine's native marley.Grammar
representation. Like package marley/lexer, it is merely an example
client, here so cmd/marleydemo has a grammar to load from a file instead
of one hard-coded in Go source.

The DSL itself is parsed with marley's own engine, against a small,
fixed meta-grammar (metaGrammar, below), so the reducer's input really is
a parse tree produced by this package's own dependency.

DSL syntax, by example:

	parens -> ;
	parens -> "(" parens ")" ;

The first rule defined is the start rule. Alternative productions are
separated by "|", each rule ends in ";", and symbols are either bare identifiers
(nonterminal references) or double-quoted string literals (terminals
matched by marley.Exactly).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dsl

import (
	"github.com/brager/marley"
	"github.com/brager/marley/earley"
	"github.com/brager/marley/lexer"
)

// Doc      -> Rule
//
//	| Rule Doc
//
// Rule     -> ident Arrow Alts semicolon
// Arrow    -> arrowtail arrowhead
// Alts     -> Alt
//
//	| Alt pipe Alts
//
// Alt      -> ε
//
//	| Symbol Alt
//
// Symbol   -> ident
//
//	| string
func metaGrammar() *marley.Grammar[marley.TaggedToken] {
	b := marley.NewGrammarBuilder[marley.TaggedToken]("DSL")
	tag := func(t string) marley.Matcher[marley.TaggedToken] {
		return tagMatcher{tag: t}
	}

	b.Rule("Doc").Nonterm("Rule").End()
	b.Rule("Doc").Nonterm("Rule").Nonterm("Doc").End()

	b.Rule("Rule").Term(tag(lexer.Ident)).Nonterm("Arrow").Nonterm("Alts").Term(tag(lexer.Semicolon)).End()

	b.Rule("Arrow").Term(tag(lexer.ArrowTail)).Term(tag(lexer.ArrowHead)).End()

	b.Rule("Alts").Nonterm("Alt").End()
	b.Rule("Alts").Nonterm("Alt").Term(tag(lexer.Pipe)).Nonterm("Alts").End()

	b.Rule("Alt").End() // epsilon: an empty alternative
	b.Rule("Alt").Nonterm("Symbol").Nonterm("Alt").End()

	b.Rule("Symbol").Term(tag(lexer.Ident)).End()
	b.Rule("Symbol").Term(tag(lexer.String)).End()

	g, err := b.Build("Doc")
	if err != nil {
		// metaGrammar is fixed at compile time; a build error here would
		// be a bug in this package, not a user-facing condition.
		panic("marley/dsl: malformed built-in meta-grammar: " + err.Error())
	}
	return g
}

// tagMatcher matches a marley.TaggedToken by its Tag field directly,
// without going through the string/Tagged duck-typing marley.Tag performs,
// every token the lexer produces is already a TaggedToken, so there is
// no ambiguity to resolve here.
type tagMatcher struct {
	tag string
}

func (m tagMatcher) Matches(token marley.TaggedToken) bool { return token.Tag == m.tag }
func (m tagMatcher) Error() string                         { return "tag " + m.tag }
func (m tagMatcher) Key() string                           { return "tag:" + m.tag }

// ParseDoc tokenizes and parses src against the DSL meta-grammar,
// returning the resulting parse tree.
func ParseDoc(src string) (*earley.Tree[marley.TaggedToken], error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p, err := earley.MakeMarley(metaGrammar(), "Doc")
	if err != nil {
		return nil, err
	}
	p.FeedMany(tokens)
	if p.Failed() {
		msg, _ := p.GetFailure()
		return nil, &ParseError{Message: msg}
	}
	if !p.Finished() {
		return nil, &ParseError{Message: "unexpected end of input"}
	}
	results := p.Results()
	// The meta-grammar is unambiguous, so exactly one parse is expected;
	// take the first regardless, rather than fail a client over an
	// internal-grammar property it has no control over.
	return results[0], nil
}

// ParseError reports a failure to parse DSL source text.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return "dsl: " + e.Message
}
