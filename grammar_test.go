package marley

import "testing"

func TestGrammarBuilderBuild(t *testing.T) {
	b := NewGrammarBuilder[string]("parens")
	b.Rule("parens").End()
	b.Rule("parens").Term(Exactly("(")).Nonterm("parens").Term(Exactly(")")).End()

	g, err := b.Build("parens")
	if err != nil {
		t.Fatalf("unexpected error building grammar: %v", err)
	}
	if g.Name() != "parens" {
		t.Errorf("expected grammar name %q, got %q", "parens", g.Name())
	}
	if !g.HasRule("parens") {
		t.Errorf("expected grammar to have rule \"parens\"")
	}
	prods, ok := g.RulesOf("parens")
	if !ok {
		t.Fatalf("expected RulesOf(\"parens\") to report ok")
	}
	if len(prods) != 2 {
		t.Fatalf("expected 2 alternative productions, got %d", len(prods))
	}
}

func TestGrammarBuilderUndefinedStartRule(t *testing.T) {
	b := NewGrammarBuilder[string]("empty")
	_, err := b.Build("nope")
	if err == nil {
		t.Fatalf("expected an error building a grammar with an undefined start rule")
	}
}

func TestGrammarBuilderUndefinedNonterminal(t *testing.T) {
	b := NewGrammarBuilder[string]("dangling")
	b.Rule("top").Nonterm("missing").End()
	_, err := b.Build("top")
	if err == nil {
		t.Fatalf("expected an error building a grammar referencing an undefined nonterminal")
	}
}

func TestGrammarIsImmutableAcrossBuilderReuse(t *testing.T) {
	b := NewGrammarBuilder[string]("g")
	b.Rule("top").Term(Exactly("a")).End()
	g, err := b.Build("top")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Rule("top").Term(Exactly("b")).End()
	prods, _ := g.RulesOf("top")
	if len(prods) != 1 {
		t.Errorf("expected already-built grammar to be unaffected by further builder calls, got %d productions", len(prods))
	}
}

func TestRulesOfUnknownNonterminal(t *testing.T) {
	b := NewGrammarBuilder[string]("g")
	b.Rule("top").End()
	g, err := b.Build("top")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := g.RulesOf("ghost"); ok {
		t.Errorf("did not expect RulesOf to report ok for an undefined nonterminal")
	}
}

func TestSymbolKeyDistinguishesTerminalFromNonterminal(t *testing.T) {
	term := Terminal[string](Exactly("x"))
	nonterm := Nonterminal[string]("x")
	if term.Key() == nonterm.Key() {
		t.Errorf("expected a terminal and a nonterminal both named/matching \"x\" to have distinct Key()s")
	}
}
