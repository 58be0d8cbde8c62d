package dsl

import (
	"fmt"

	"github.com/brager/marley"
	"github.com/brager/marley/earley"
)

// Reduce walks a parse tree produced by ParseDoc and builds the
// marley.Grammar[string] it describes, together with its start rule (the
// first rule the DSL source defines).
func Reduce(doc *earley.Tree[marley.TaggedToken]) (*marley.Grammar[string], string, error) {
	if doc == nil || doc.Head != "Doc" {
		return nil, "", fmt.Errorf("dsl: expected a Doc node, got %v", doc)
	}
	b := marley.NewGrammarBuilder[string]("DSL-derived")
	var startRule string
	for node := doc; node != nil; {
		ruleNode, rest, err := splitDoc(node)
		if err != nil {
			return nil, "", err
		}
		name, alts, err := reduceRule(ruleNode)
		if err != nil {
			return nil, "", err
		}
		if startRule == "" {
			startRule = name
		}
		for _, alt := range alts {
			rb := b.Rule(name)
			for _, sym := range alt {
				if sym.terminal {
					rb = rb.Term(marley.Exactly(sym.literal))
				} else {
					rb = rb.Nonterm(sym.literal)
				}
			}
			rb.End()
		}
		node = rest
	}
	g, err := b.Build(startRule)
	if err != nil {
		return nil, "", err
	}
	return g, startRule, nil
}

// splitDoc pulls the Rule child out of a Doc node and returns the
// remaining Doc tail, or nil if this was the last rule.
func splitDoc(doc *earley.Tree[marley.TaggedToken]) (*earley.Tree[marley.TaggedToken], *earley.Tree[marley.TaggedToken], error) {
	switch len(doc.Children) {
	case 1:
		rule, ok := doc.Children[0].(*earley.Tree[marley.TaggedToken])
		if !ok {
			return nil, nil, fmt.Errorf("dsl: malformed Doc node")
		}
		return rule, nil, nil
	case 2:
		rule, ok := doc.Children[0].(*earley.Tree[marley.TaggedToken])
		if !ok {
			return nil, nil, fmt.Errorf("dsl: malformed Doc node")
		}
		tail, ok := doc.Children[1].(*earley.Tree[marley.TaggedToken])
		if !ok {
			return nil, nil, fmt.Errorf("dsl: malformed Doc node")
		}
		return rule, tail, nil
	default:
		return nil, nil, fmt.Errorf("dsl: Doc node with %d children", len(doc.Children))
	}
}

// dslSymbol is a Symbol node reduced to the bare information the grammar
// builder needs: whether it is a terminal literal or a nonterminal
// reference, and its text.
type dslSymbol struct {
	terminal bool
	literal  string
}

// reduceRule converts a Rule node into its nonterminal name and the list
// of alternative productions (each a list of dslSymbol) it defines.
func reduceRule(rule *earley.Tree[marley.TaggedToken]) (string, [][]dslSymbol, error) {
	if rule == nil || rule.Head != "Rule" || len(rule.Children) != 4 {
		return "", nil, fmt.Errorf("dsl: malformed Rule node: %v", rule)
	}
	nameTok, ok := rule.Children[0].(marley.TaggedToken)
	if !ok || nameTok.Tag != "ident" {
		return "", nil, fmt.Errorf("dsl: Rule must start with a rule name, got %v", rule.Children[0])
	}
	arrow, ok := rule.Children[1].(*earley.Tree[marley.TaggedToken])
	if !ok {
		return "", nil, fmt.Errorf("dsl: malformed Rule node")
	}
	if err := reduceArrow(arrow); err != nil {
		return "", nil, err
	}
	alts, ok := rule.Children[2].(*earley.Tree[marley.TaggedToken])
	if !ok {
		return "", nil, fmt.Errorf("dsl: malformed Rule node")
	}
	productions, err := reduceAlts(alts)
	if err != nil {
		return "", nil, err
	}
	return nameTok.Value.(string), productions, nil
}

// reduceArrow validates the two-token "->" production.
//
// An earlier draft of this grammar combined the arrow into a single
// token tagged "arrow"; the lexer never does that, it always emits
// arrowtail ('-') and arrowhead ('>') as two separate tokens, so the
// "arrow" case below can never fire. It is kept rather than deleted so
// that the dead branch is visibly a known leftover, not a silent gap.
func reduceArrow(arrow *earley.Tree[marley.TaggedToken]) error {
	if arrow.Head != "Arrow" {
		return fmt.Errorf("dsl: expected an Arrow node, got %q", arrow.Head)
	}
	for _, c := range arrow.Children {
		tok, ok := c.(marley.TaggedToken)
		if !ok {
			return fmt.Errorf("dsl: malformed Arrow node")
		}
		switch tok.Tag {
		case "arrowtail", "arrowhead":
			// expected shape; nothing further to check
		case "arrow":
			// unreachable: see the doc comment above
		default:
			return fmt.Errorf("dsl: unexpected token tagged %q in Arrow production", tok.Tag)
		}
	}
	return nil
}

// reduceAlts flattens an Alts node into its alternative productions.
func reduceAlts(alts *earley.Tree[marley.TaggedToken]) ([][]dslSymbol, error) {
	if alts.Head != "Alts" {
		return nil, fmt.Errorf("dsl: expected an Alts node, got %q", alts.Head)
	}
	altNode, ok := alts.Children[0].(*earley.Tree[marley.TaggedToken])
	if !ok {
		return nil, fmt.Errorf("dsl: malformed Alts node")
	}
	symbols, err := reduceAlt(altNode)
	if err != nil {
		return nil, err
	}
	productions := [][]dslSymbol{symbols}
	if len(alts.Children) == 3 {
		rest, ok := alts.Children[2].(*earley.Tree[marley.TaggedToken])
		if !ok {
			return nil, fmt.Errorf("dsl: malformed Alts node")
		}
		more, err := reduceAlts(rest)
		if err != nil {
			return nil, err
		}
		productions = append(productions, more...)
	}
	return productions, nil
}

// reduceAlt flattens an Alt node (a right-recursive list of Symbols, or
// empty for an epsilon production) into a flat slice of dslSymbol.
func reduceAlt(alt *earley.Tree[marley.TaggedToken]) ([]dslSymbol, error) {
	if alt.Head != "Alt" {
		return nil, fmt.Errorf("dsl: expected an Alt node, got %q", alt.Head)
	}
	if len(alt.Children) == 0 {
		return nil, nil // epsilon production
	}
	symNode, ok := alt.Children[0].(*earley.Tree[marley.TaggedToken])
	if !ok {
		return nil, fmt.Errorf("dsl: malformed Alt node")
	}
	sym, err := reduceSymbol(symNode)
	if err != nil {
		return nil, err
	}
	tailNode, ok := alt.Children[1].(*earley.Tree[marley.TaggedToken])
	if !ok {
		return nil, fmt.Errorf("dsl: malformed Alt node")
	}
	rest, err := reduceAlt(tailNode)
	if err != nil {
		return nil, err
	}
	return append([]dslSymbol{sym}, rest...), nil
}

func reduceSymbol(sym *earley.Tree[marley.TaggedToken]) (dslSymbol, error) {
	if sym.Head != "Symbol" || len(sym.Children) != 1 {
		return dslSymbol{}, fmt.Errorf("dsl: malformed Symbol node: %v", sym)
	}
	tok, ok := sym.Children[0].(marley.TaggedToken)
	if !ok {
		return dslSymbol{}, fmt.Errorf("dsl: malformed Symbol node")
	}
	switch tok.Tag {
	case "ident":
		return dslSymbol{terminal: false, literal: tok.Value.(string)}, nil
	case "string":
		return dslSymbol{terminal: true, literal: tok.Value.(string)}, nil
	default:
		return dslSymbol{}, fmt.Errorf("dsl: unexpected token tagged %q in Symbol production", tok.Tag)
	}
}
