package earley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests check properties the engine should hold regardless of
// input: monotone chart growth, determinism across equal runs, prefix
// monotonicity of finished()/failed(), and well-formedness of results().
// testify's assert/require carry the bulk of the checking here, since a
// bare t.Errorf doesn't scale well to the number of sub-assertions a
// property check like "every prefix of every extension is consistent"
// tends to need.

func TestDeterminism(t *testing.T) {
	g := arithGrammar(t)
	input := toks("2+3*4")

	p1, err := MakeMarley(g, "P")
	require.NoError(t, err)
	p2, err := MakeMarley(g, "P")
	require.NoError(t, err)

	p1.FeedMany(input)
	p2.FeedMany(input)

	assert.Equal(t, p1.Failed(), p2.Failed())
	assert.Equal(t, p1.Finished(), p2.Finished())
	assert.ElementsMatch(t, treeStrings(p1.Results()), treeStrings(p2.Results()))
}

func TestPrefixMonotonicity(t *testing.T) {
	g := parensGrammar(t)
	input := toks("(())")

	p, err := MakeMarley(g, "parens")
	require.NoError(t, err)

	finishedBefore := false
	for i, tok := range input {
		p.Feed(tok)
		require.False(t, p.Failed(), "valid prefix up to token %d should not fail", i)
		if p.Finished() {
			finishedBefore = true
		}
	}
	assert.True(t, finishedBefore, "the full balanced input should have finished at some point")

	// once failed, every further feed must stay failed.
	pf, err := MakeMarley(g, "parens")
	require.NoError(t, err)
	pf.Feed("x")
	require.True(t, pf.Failed())
	pf.FeedMany(toks("((("))
	assert.True(t, pf.Failed(), "a failed parser must stay failed regardless of further input")
}

func TestResultWellFormedness(t *testing.T) {
	g := ambiguousGrammar(t)
	p, err := MakeMarley(g, "E")
	require.NoError(t, err)
	p.FeedMany(toks("1+1+1"))
	require.True(t, p.Finished())

	for _, tree := range p.Results() {
		assert.Equal(t, "E", tree.Head, "every result tree must be headed by the start rule")
	}
}

// TestMonotoneChart checks that no item present in a state set before a
// Feed call disappears from it afterwards, growth is monotone.
func TestMonotoneChart(t *testing.T) {
	g := arithGrammar(t)
	p, err := MakeMarley(g, "P")
	require.NoError(t, err)

	before := snapshotChart(p.chart)
	p.Feed("2")
	after := snapshotChart(p.chart)

	for k, keysBefore := range before {
		for key := range keysBefore {
			assert.True(t, after[k][key], "item present in set %d before Feed must still be present after", k)
		}
	}
}

// TestRepeatedParsesAgree checks that three fresh parsers fed the same
// ambiguous input produce the same set of result trees. The engine always
// drains its work queue LIFO, so this test does not exercise a different
// queue order.
func TestRepeatedParsesAgree(t *testing.T) {
	g := ambiguousGrammar(t)
	input := toks("1+1+1")
	results := make([][]string, 3)
	for i := 0; i < 3; i++ {
		p, err := MakeMarley(g, "E")
		require.NoError(t, err)
		p.FeedMany(input)
		results[i] = treeStrings(p.Results())
	}
	assert.ElementsMatch(t, results[0], results[1])
	assert.ElementsMatch(t, results[1], results[2])
}

func treeStrings(trees []*Tree[string]) []string {
	out := make([]string, len(trees))
	for i, tr := range trees {
		out[i] = tr.String()
	}
	return out
}

func snapshotChart(c *Chart[string]) []map[string]bool {
	out := make([]map[string]bool, len(c.sets))
	for k, s := range c.sets {
		m := make(map[string]bool)
		for _, v := range s.items.Values() {
			m[itemKey(v.(item[string]))] = true
		}
		out[k] = m
	}
	return out
}
