package gramtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, input string) []token {
	t.Helper()
	var toks []token
	for tok := range lex(input) {
		toks = append(toks, tok)
		if tok.typ == tokenEOF || tok.typ == tokenError {
			break
		}
	}
	return toks
}

func typesOf(toks []token) []tokenType {
	out := make([]tokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.typ
	}
	return out
}

func TestLexSimpleEdge(t *testing.T) {
	toks := drain(t, "A--B")
	assert.Equal(t, []tokenType{tokenVertex, tokenEdgeUndir, tokenVertex, tokenEOF}, typesOf(toks))
	assert.Equal(t, "A", toks[0].val)
	assert.Equal(t, "B", toks[2].val)
}

func TestLexDirectedEdgesAndSemicolons(t *testing.T) {
	toks := drain(t, "A->B; C<-D;")
	assert.Equal(t, []tokenType{
		tokenVertex, tokenEdgeFwd, tokenVertex, tokenSemi,
		tokenVertex, tokenEdgeBack, tokenVertex, tokenSemi, tokenEOF,
	}, typesOf(toks))
}

func TestLexMergeAndTag(t *testing.T) {
	toks := drain(t, "A^B[hub]")
	require.Len(t, toks, 5)
	assert.Equal(t, tokenMerge, toks[1].typ)
	assert.Equal(t, tokenTag, toks[3].typ)
	assert.Equal(t, "hub", toks[3].val)
}

func TestLexTagWithEscapedBracket(t *testing.T) {
	toks := drain(t, `A[x\]y]`)
	require.Len(t, toks, 3)
	assert.Equal(t, tokenTag, toks[1].typ)
	assert.Equal(t, "x]y", toks[1].val)
}

func TestLexUnterminatedTagIsError(t *testing.T) {
	toks := drain(t, "A[unterminated")
	last := toks[len(toks)-1]
	assert.Equal(t, tokenError, last.typ)
}

func TestLexUnicodeVertex(t *testing.T) {
	toks := drain(t, "α--β")
	require.Len(t, toks, 4)
	assert.Equal(t, "α", toks[0].val)
	assert.Equal(t, "β", toks[2].val)
}
