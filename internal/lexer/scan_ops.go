package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// Жадность: сначала 4-символьные, затем 3-, 2-, 1-символьные.
// Structural characters become Punct, the rest Operator; unknown bytes are
// reported and yield Invalid.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.tokenFrom(start, k)
	}

	if lx.opts.Language == lang.JS {
		switch {
		case lx.try4('>', '>', '>', '='):
			return emit(token.Operator)
		case lx.try3('=', '=', '='),
			lx.try3('!', '=', '='),
			lx.try3('*', '*', '='),
			lx.try3('<', '<', '='),
			lx.try3('>', '>', '='),
			lx.try3('>', '>', '>'),
			lx.try3('&', '&', '='),
			lx.try3('|', '|', '='),
			lx.try3('?', '?', '='),
			lx.try3('.', '.', '.'):
			return emit(token.Operator)
		}
		// "?." only when not followed by a digit: a?.3:b is a ternary
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '.' && !isDec(lx.cursor.PeekAt(2)) {
			lx.cursor.Off += 2
			return emit(token.Operator)
		}
		switch {
		case lx.try2('=', '='), lx.try2('!', '='),
			lx.try2('<', '='), lx.try2('>', '='),
			lx.try2('&', '&'), lx.try2('|', '|'),
			lx.try2('?', '?'), lx.try2('*', '*'),
			lx.try2('+', '+'), lx.try2('-', '-'),
			lx.try2('+', '='), lx.try2('-', '='),
			lx.try2('*', '='), lx.try2('/', '='),
			lx.try2('%', '='), lx.try2('&', '='),
			lx.try2('|', '='), lx.try2('^', '='),
			lx.try2('<', '<'), lx.try2('>', '>'),
			lx.try2('=', '>'):
			return emit(token.Operator)
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.', ':':
		return emit(token.Punct)
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', '?':
		return emit(token.Operator)
	case '#', '@':
		// CSS hash/id selectors and at-signs; JS private names and decorators
		return emit(token.Punct)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
