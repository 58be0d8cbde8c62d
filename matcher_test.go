package marley

import "testing"

func TestExactly(t *testing.T) {
	m := Exactly("(")
	if !m.Matches("(") {
		t.Errorf("expected Exactly(\"(\") to match \"(\"")
	}
	if m.Matches(")") {
		t.Errorf("did not expect Exactly(\"(\") to match \")\"")
	}
}

func TestExactlyKeyStability(t *testing.T) {
	a := Exactly(42)
	b := Exactly(42)
	if a.Key() != b.Key() {
		t.Errorf("expected equal-valued matchers to share a Key(), got %q and %q", a.Key(), b.Key())
	}
	if a.Key() == Exactly(43).Key() {
		t.Errorf("did not expect different-valued matchers to share a Key()")
	}
}

func TestTagMatchesBareString(t *testing.T) {
	m := Tag("ident")
	if !m.Matches("ident") {
		t.Errorf("expected Tag(\"ident\") to match the bare string \"ident\"")
	}
	if m.Matches("string") {
		t.Errorf("did not expect Tag(\"ident\") to match an unrelated bare string")
	}
}

func TestTagMatchesTaggedToken(t *testing.T) {
	m := Tag("ident")
	tok := TaggedToken{Tag: "ident", Value: "foo"}
	if !m.Matches(tok) {
		t.Errorf("expected Tag(\"ident\") to match a TaggedToken tagged \"ident\"")
	}
	other := TaggedToken{Tag: "string", Value: "foo"}
	if m.Matches(other) {
		t.Errorf("did not expect Tag(\"ident\") to match a TaggedToken tagged \"string\"")
	}
}

func TestTagRejectsUnrelatedType(t *testing.T) {
	m := Tag("ident")
	if m.Matches(42) {
		t.Errorf("did not expect Tag to match a token that is neither a string nor Tagged")
	}
}

func TestTaggedTokenTagOf(t *testing.T) {
	tok := TaggedToken{Tag: "number", Value: 7}
	if tok.TagOf() != "number" {
		t.Errorf("expected TagOf() to return %q, got %q", "number", tok.TagOf())
	}
}
