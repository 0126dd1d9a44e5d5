package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// Поддержка: 0, 123, 0x…, 0b…, 0o…, 1.0, .5, 1., 1e-3.
// CSS units (px, em) are a separate adjacent Ident token, not part of the
// number. Malformed exponents are reported and yield an Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// leading dot: ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.maybeExponent(start)
	}

	// radix prefixes (JS only)
	if lx.cursor.Peek() == '0' && lx.opts.Language == lang.JS {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for isHex(lx.cursor.Peek()) {
					lx.cursor.Bump()
				}
				return lx.tokenFrom(start, token.Number)
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' {
					lx.cursor.Bump()
				}
				return lx.tokenFrom(start, token.Number)
			case 'o', 'O':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for b := lx.cursor.Peek(); b >= '0' && b <= '7'; b = lx.cursor.Peek() {
					lx.cursor.Bump()
				}
				return lx.tokenFrom(start, token.Number)
			}
		}
	}

	// integer part
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction; a bare trailing dot ("1.") stays part of the number
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.maybeExponent(start)
}

func (lx *Lexer) maybeExponent(start Mark) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		// peek past an optional sign before committing: "2em" is a CSS
		// dimension, not an exponent
		next := lx.cursor.PeekAt(1)
		if next == '+' || next == '-' {
			if isDec(lx.cursor.PeekAt(2)) {
				lx.cursor.Bump() // e
				lx.cursor.Bump() // sign
			} else if lx.opts.Language == lang.JS {
				lx.cursor.Bump()
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			} else {
				return lx.tokenFrom(start, token.Number)
			}
		} else if isDec(next) {
			lx.cursor.Bump() // e
		} else if lx.opts.Language == lang.JS && !isIdentContinueByte(next) {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		} else {
			// "2em", "3e_x": the e belongs to a following ident
			return lx.tokenFrom(start, token.Number)
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.tokenFrom(start, token.Number)
}
