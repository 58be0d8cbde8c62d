package dsl

import (
	"testing"

	"github.com/brager/marley"
	"github.com/brager/marley/earley"
)

func TestReduceParensGrammar(t *testing.T) {
	doc, err := ParseDoc(`
		parens -> ;
		parens -> "(" parens ")" ;
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	g, start, err := Reduce(doc)
	if err != nil {
		t.Fatalf("unexpected reduce error: %v", err)
	}
	if start != "parens" {
		t.Fatalf("expected start rule %q, got %q", "parens", start)
	}
	if !g.HasRule("parens") {
		t.Fatalf("expected reduced grammar to define \"parens\"")
	}

	p, err := earley.MakeMarley(g, start)
	if err != nil {
		t.Fatalf("unexpected error building parser from reduced grammar: %v", err)
	}
	p.FeedMany([]string{"(", "(", ")", ")"})
	if p.Failed() {
		msg, _ := p.GetFailure()
		t.Fatalf("unexpected failure parsing \"(())\" with reduced grammar: %s", msg)
	}
	if !p.Finished() {
		t.Errorf("expected \"(())\" to finish against the reduced grammar")
	}
}

func TestReduceRejectsNonDocTree(t *testing.T) {
	_, _, err := Reduce(&earley.Tree[marley.TaggedToken]{Head: "NotADoc"})
	if err == nil {
		t.Fatalf("expected an error reducing a non-Doc tree")
	}
}

func TestReduceMultiAlternativeRule(t *testing.T) {
	doc, err := ParseDoc(`digit -> "1" | "2" | "3" ;`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	g, start, err := Reduce(doc)
	if err != nil {
		t.Fatalf("unexpected reduce error: %v", err)
	}
	prods, ok := g.RulesOf(start)
	if !ok {
		t.Fatalf("expected rule %q to be defined", start)
	}
	if len(prods) != 3 {
		t.Errorf("expected 3 alternative productions for %q, got %d", start, len(prods))
	}
}
