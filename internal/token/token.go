package token

import (
	"github.com/step1profit/juicer/internal/source"
)

// Token represents a single source token with its location.
// A token is a plain value. The rule pipeline copies the incoming stream
// before running, so rules are free to rewrite tokens in place without the
// caller's slice changing under it.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsSignificant reports whether the token carries program meaning, as
// opposed to spacing and comments.
func (t Token) IsSignificant() bool {
	switch t.Kind {
	case Comment, Whitespace, Newline:
		return false
	default:
		return true
	}
}

// IsLiteral reports whether the token is a string, number, or regex literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Number, Regex:
		return true
	default:
		return false
	}
}

// IsPunctText reports whether the token is punctuation with exactly this text.
func (t Token) IsPunctText(text string) bool {
	return t.Kind == Punct && t.Text == text
}

// IsKeywordText reports whether the token is the given keyword.
func (t Token) IsKeywordText(text string) bool {
	return t.Kind == Keyword && t.Text == text
}

// Adjacent reports whether next started at the exact byte where t ended in
// the original source. Byte-adjacent tokens are proven to tokenize apart,
// so the emitter never needs a separator between them.
func Adjacent(t, next Token) bool {
	return t.Span.File == next.Span.File && t.Span.End == next.Span.Start
}
