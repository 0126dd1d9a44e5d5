package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/token"
)

// scanString reads '…' or "…". Escapes (\X, including escaped newlines as
// line continuations) are skipped without deep validation; a raw newline or
// EOF before the closing quote is an unterminated literal.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.tokenFrom(start, token.String)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanTemplate reads a backtick template literal as one String token,
// `${…}` interiors included. Newlines are legal inside. Brace depth inside
// a substitution keeps `}` of nested object literals from closing it early.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	subDepth := 0    // nesting of ${ … }
	braces := 0      // raw braces inside the current substitution
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		case b == '`' && subDepth == 0:
			lx.cursor.Bump()
			return lx.tokenFrom(start, token.String)
		case b == '$':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				subDepth++
				continue
			}
		case b == '{' && subDepth > 0:
			braces++
		case b == '}' && subDepth > 0:
			if braces > 0 {
				braces--
			} else {
				subDepth--
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
