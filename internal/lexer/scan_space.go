package lexer

import (
	"github.com/step1profit/juicer/internal/token"
)

// scanSpace coalesces a run of spaces/tabs into one Whitespace token.
// Lone \r (not part of \r\n, which FileSet already normalized) counts as
// plain whitespace.
func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\f' && b != '\v' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Whitespace)
}

// scanNewline coalesces consecutive line feeds into one Newline token.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Newline)
}
