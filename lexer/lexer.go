/*
Package lexer is a small, character-by-character scanner for the grammar
DSL consumed by package marley/dsl. It is a toy lexer, an external
collaborator the parsing engine never depends on, but something has to
turn DSL source text into tokens for the demo in cmd/marleydemo, so it
lives here.

Grounded on the category-sequence scanning idiom of gorgo's lr/scanner
package (CatSeqReader/RuneCategorizer), simplified down to the handful of
token categories the DSL actually needs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brager/marley"
)

// Token categories the DSL grammar distinguishes. Each is surfaced as the
// Tag of a marley.TaggedToken, so marley.Tag(...) can match directly
// against them; Value carries the raw lexeme.
const (
	Ident     = "ident"
	String    = "string"
	ArrowTail = "arrowtail" // '-'
	ArrowHead = "arrowhead" // '>'
	Pipe      = "pipe"      // '|'
	Semicolon = "semicolon" // ';'
)

// Tokenize scans src into a sequence of tagged tokens, skipping whitespace
// and '#'-to-end-of-line comments.
func Tokenize(src string) ([]marley.TaggedToken, error) {
	runes := []rune(src)
	var out []marley.TaggedToken
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '#':
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case r == '-':
			out = append(out, marley.TaggedToken{Tag: ArrowTail, Value: "-"})
			i++
		case r == '>':
			out = append(out, marley.TaggedToken{Tag: ArrowHead, Value: ">"})
			i++
		case r == '|':
			out = append(out, marley.TaggedToken{Tag: Pipe, Value: "|"})
			i++
		case r == ';':
			out = append(out, marley.TaggedToken{Tag: Semicolon, Value: ";"})
			i++
		case r == '"':
			lexeme, next, err := scanString(runes, i)
			if err != nil {
				return nil, err
			}
			out = append(out, marley.TaggedToken{Tag: String, Value: lexeme})
			i = next
		case isIdentStart(r):
			lexeme, next := scanIdent(runes, i)
			out = append(out, marley.TaggedToken{Tag: Ident, Value: lexeme})
			i = next
		default:
			return nil, fmt.Errorf("lexer: unexpected character %q at offset %d", r, i)
		}
	}
	return out, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func scanIdent(runes []rune, start int) (string, int) {
	i := start + 1
	for i < len(runes) && isIdentPart(runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}

// scanString reads a double-quoted literal starting at runes[start] == '"'.
// Escaping is limited to \" and \\, which is all the DSL's terminal
// literals ever need.
func scanString(runes []rune, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(runes) {
		r := runes[i]
		if r == '"' {
			return b.String(), i + 1, nil
		}
		if r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
			b.WriteRune(runes[i+1])
			i += 2
			continue
		}
		b.WriteRune(r)
		i++
	}
	return "", 0, fmt.Errorf("lexer: unterminated string literal starting at offset %d", start)
}
