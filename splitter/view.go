package splitter

import "github.com/pgsql-ls/core/token"

// View is a stateful, whitespace-skipping cursor over a pre-lexed token
// vector. It never mutates the vector. Peek and Lookbehind skip whitespace;
// Current, Advance and TokenAt work on raw token indices, so the splitter's
// main loop skips whitespace tokens itself.
type View struct {
	tokens []token.Token
	pos    int
}

func NewView(tokens []token.Token) *View {
	return &View{tokens: tokens}
}

var eofToken = token.Token{Kind: token.Eof}

// Peek returns the token `offset` significant tokens ahead of pos (counting
// only non-whitespace when skipWhitespace is true), or an Eof sentinel.
func (v *View) Peek(offset int, skipWhitespace bool) token.Token {
	i := v.pos
	remaining := offset
	for i < len(v.tokens) {
		if skipWhitespace && token.IsWhitespace(v.tokens[i].Kind) {
			i++
			continue
		}
		if remaining == 0 {
			return v.tokens[i]
		}
		remaining--
		i++
	}
	return eofToken
}

// Lookbehind is the symmetric backward peek. extraSkip additionally steps
// over that many more significant tokens before counting offset, used to
// locate the last significant token before a known gap.
func (v *View) Lookbehind(offset int, skipWhitespace bool, extraSkip int) token.Token {
	i := v.pos - 1
	skip := extraSkip
	for i >= 0 {
		if skipWhitespace && token.IsWhitespace(v.tokens[i].Kind) {
			i--
			continue
		}
		if skip > 0 {
			skip--
			i--
			continue
		}
		if offset == 0 {
			return v.tokens[i]
		}
		offset--
		i--
	}
	return eofToken
}

// Current returns the token at pos without advancing.
func (v *View) Current() token.Token {
	if v.pos >= len(v.tokens) {
		return eofToken
	}
	return v.tokens[v.pos]
}

// Pos returns the current raw token-vector index.
func (v *View) Pos() int { return v.pos }

// Advance moves pos forward by one raw token.
func (v *View) Advance() { v.pos++ }

// Eof reports whether pos has reached or passed the Eof token.
func (v *View) Eof() bool {
	return v.pos >= len(v.tokens) || v.tokens[v.pos].Kind == token.Eof
}

// TokenAt returns the raw token at a known vector index, or Eof past the end.
func (v *View) TokenAt(i int) token.Token {
	if i < 0 || i >= len(v.tokens) {
		return eofToken
	}
	return v.tokens[i]
}
