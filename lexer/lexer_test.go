package lexer

import (
	"testing"

	"github.com/brager/marley"
)

func TestTokenizeRule(t *testing.T) {
	toks, err := Tokenize(`parens -> "(" parens ")" | ;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []marley.TaggedToken{
		{Tag: Ident, Value: "parens"},
		{Tag: ArrowTail, Value: "-"},
		{Tag: ArrowHead, Value: ">"},
		{Tag: String, Value: "("},
		{Tag: Ident, Value: "parens"},
		{Tag: String, Value: ")"},
		{Tag: Pipe, Value: "|"},
		{Tag: Semicolon, Value: ";"},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, tok := range toks {
		if tok.Tag != want[i].Tag || tok.Value != want[i].Value {
			t.Errorf("token %d: expected %+v, got %+v", i, want[i], tok)
		}
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, err := Tokenize("# a comment\nfoo ; # trailing\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Tag != Ident || toks[0].Value != "foo" {
		t.Errorf("expected first token to be ident \"foo\", got %+v", toks[0])
	}
	if toks[1].Tag != Semicolon {
		t.Errorf("expected second token to be a semicolon, got %+v", toks[1])
	}
}

func TestTokenizeEscapedString(t *testing.T) {
	toks, err := Tokenize(`"a\"b\\c"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Tag != String {
		t.Fatalf("expected a single string token, got %v", toks)
	}
	if toks[0].Value != `a"b\c` {
		t.Errorf("expected unescaped value %q, got %q", `a"b\c`, toks[0].Value)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatalf("expected an error for an unterminated string literal")
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("foo @ bar")
	if err == nil {
		t.Fatalf("expected an error for an unexpected character")
	}
}

func TestTokenizeIdentWithDigitsAndUnderscore(t *testing.T) {
	toks, err := Tokenize("rule_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Value != "rule_2" {
		t.Fatalf("expected a single ident token \"rule_2\", got %v", toks)
	}
}
