package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/token"
)

// regexAllowed решает по последнему значимому токену: деление или regex.
// A '/' is division after something that can end an expression; everywhere
// else it can only start a regex literal.
func (lx *Lexer) regexAllowed() bool {
	switch lx.lastKind {
	case token.Invalid:
		// start of input
		return true
	case token.Ident, token.Number, token.String, token.Regex:
		return false
	case token.Keyword:
		// `this/2` and literal keywords divide; `return /re/` does not
		switch lx.lastText {
		case "this", "true", "false", "null", "undefined", "super":
			return false
		}
		return true
	case token.Punct:
		switch lx.lastText {
		case ")", "]":
			return false
		case "}":
			// block end: a statement position follows. Object-literal ends
			// followed by division are rare enough that jsmin makes the
			// same call.
			return true
		}
		return true
	case token.Operator:
		switch lx.lastText {
		case "++", "--":
			return false
		}
		return true
	}
	return true
}

// scanRegex reads /pattern/flags. Character classes protect '/';
// a newline or EOF inside the pattern is an unterminated literal.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '/'
	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				continue // report below
			}
			lx.cursor.Bump()
			continue
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegex, sp, "newline in regular expression literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			// flags
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.tokenFrom(start, token.Regex)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
