package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-ls/core/token"
)

// significant drops whitespace/comment tokens and the trailing Eof sentinel,
// matching the way splitter.View consumes the vector.
func significant(toks []token.Token) []token.Token {
	var out []token.Token
	for _, t := range toks {
		if t.Kind == token.Eof || token.IsWhitespace(t.Kind) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks, diags := Lex("SELECT foo, Bar_2 FROM \"Quoted Table\"")
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 6)
	assert.Equal(t, token.Select, sig[0].Kind)
	assert.Equal(t, token.Ident, sig[1].Kind)
	assert.Equal(t, "foo", sig[1].Text)
	assert.Equal(t, token.Ascii44, sig[2].Kind)
	assert.Equal(t, token.Ident, sig[3].Kind)
	assert.Equal(t, token.From, sig[4].Kind)
	assert.Equal(t, token.QuotedIdent, sig[5].Kind)
	assert.Equal(t, `"Quoted Table"`, sig[5].Text)
}

func TestLexStringLiteralDoubling(t *testing.T) {
	toks, diags := Lex(`'it''s here'`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Sconst, sig[0].Kind)
	assert.Equal(t, `'it''s here'`, sig[0].Text)
}

func TestLexEscapeStringLiteral(t *testing.T) {
	toks, diags := Lex(`E'a\'b'`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Sconst, sig[0].Kind)
}

func TestLexDollarQuotedBody(t *testing.T) {
	toks, diags := Lex(`$tag$ select 1; $tag$`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Sconst, sig[0].Kind)
	assert.Equal(t, `$tag$ select 1; $tag$`, sig[0].Text)
}

func TestLexUntaggedDollarQuote(t *testing.T) {
	toks, diags := Lex(`$$ hi $$`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Sconst, sig[0].Kind)
}

func TestLexPositionalParam(t *testing.T) {
	toks, diags := Lex(`$1`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Param, sig[0].Kind)
	assert.Equal(t, "$1", sig[0].Text)
}

func TestLexCastOperator(t *testing.T) {
	toks, diags := Lex(`a::int`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 3)
	assert.Equal(t, token.Ident, sig[0].Kind)
	assert.Equal(t, token.DoubleColon, sig[1].Kind)
	assert.Equal(t, token.Int, sig[2].Kind)
}

func TestLexComparisonOperators(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"<>", token.NotEq},
		{"!=", token.NotEq},
		{"<=", token.Le},
		{">=", token.Ge},
		{"<", token.Lt},
		{">", token.Gt},
	}
	for _, c := range cases {
		toks, diags := Lex(c.input)
		require.Empty(t, diags)
		sig := significant(toks)
		require.Len(t, sig, 1)
		assert.Equal(t, c.kind, sig[0].Kind, c.input)
	}
}

func TestLexNestedBlockComment(t *testing.T) {
	toks, diags := Lex(`/* outer /* inner */ still outer */ select`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.Len(t, sig, 1)
	assert.Equal(t, token.Select, sig[0].Kind)
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	toks, diags := Lex(`select 'unterminated`)
	require.NotEmpty(t, diags)
	var sawFatal bool
	for _, d := range diags {
		if d.Severity.String() == "fatal" {
			sawFatal = true
		}
	}
	assert.True(t, sawFatal)
	last := toks[len(toks)-2] // before the synthetic Eof
	assert.Equal(t, token.Illegal, last.Kind)
}

func TestLexDollarQuoteTagMismatchIsIllegalNotFatal(t *testing.T) {
	toks, diags := Lex(`$foo bar$`)
	require.Empty(t, diags)
	sig := significant(toks)
	require.NotEmpty(t, sig)
	assert.Equal(t, token.Illegal, sig[0].Kind)
}
