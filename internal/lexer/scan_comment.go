package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// scanCommentOrSlash handles the '/' entry point: "//" line comments (JS),
// "/* */" block comments, JS regex literals where the grammar allows them.
// Returns ok=false when '/' is just the operator.
func (lx *Lexer) scanCommentOrSlash() (token.Token, bool) {
	b0, b1, ok2 := lx.cursor.Peek2()
	if !ok2 || b0 != '/' {
		return token.Token{}, false
	}

	switch {
	case b1 == '/' && lx.opts.Language == lang.JS:
		return lx.scanLineComment(), true
	case b1 == '*':
		return lx.scanBlockComment(), true
	case lx.opts.Language == lang.JS && lx.regexAllowed():
		return lx.scanRegex(), true
	}
	return token.Token{}, false
}

func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.Comment)
}

// JS/CSS block comments do not nest.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.tokenFrom(start, token.Comment)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
