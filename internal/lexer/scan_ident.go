package lexer

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

const utf8RuneSelf = 0x80

// isIdentStart checks the current cursor position against the active
// language's identifier grammar without consuming anything.
func (lx *Lexer) isIdentStart() bool {
	b := lx.cursor.Peek()
	if lx.opts.Language == lang.CSS {
		switch {
		case isIdentStartByte(b) || b >= utf8RuneSelf:
			return true
		case b == '-':
			// "-webkit-", "--custom-prop"
			_, b1, ok := lx.cursor.Peek2()
			return ok && (isIdentStartByte(b1) || b1 == '-' || b1 >= utf8RuneSelf)
		case b == '@':
			// at-keywords: @media, @import
			_, b1, ok := lx.cursor.Peek2()
			return ok && (isIdentStartByte(b1) || b1 == '-')
		}
		return false
	}
	return isIdentStartByte(b) || b == '$' || b >= utf8RuneSelf
}

// scanIdent reads an identifier. Token.Text is exactly the source slice.
// For JS a keyword-table hit yields Keyword (case-sensitive, lowercase only).
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	if lx.opts.Language == lang.CSS {
		if lx.cursor.Peek() == '@' {
			lx.cursor.Bump()
		}
		for {
			b := lx.cursor.Peek()
			if isIdentContinueByte(b) || b == '-' || b >= utf8RuneSelf {
				lx.cursor.Bump()
				continue
			}
			break
		}
		return lx.tokenFrom(start, token.Ident)
	}

	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) || b == '$' || b >= utf8RuneSelf {
			lx.cursor.Bump()
			continue
		}
		break
	}

	tok := lx.tokenFrom(start, token.Ident)
	if token.LookupJSKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}
