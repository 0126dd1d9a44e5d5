package lexer

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // однотокенный буфер для Peek
	// last significant token, used to decide whether '/' starts a regex
	lastKind token.Kind
	lastText string
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		lastKind: token.Invalid,
	}
}

// Next returns the next token, including Whitespace/Newline/Comment tokens.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.remember(tok)
		return tok
	}

	tok := lx.scan()
	lx.remember(tok)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// Tokenize drains the lexer into a slice, EOF included.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) remember(tok token.Token) {
	if tok.IsSignificant() && tok.Kind != token.EOF {
		lx.lastKind = tok.Kind
		lx.lastText = tok.Text
	}
}

func (lx *Lexer) scan() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	b := lx.cursor.Peek()

	switch {
	case b == ' ' || b == '\t' || b == '\f' || b == '\v' || b == '\r':
		return lx.scanSpace()

	case b == '\n':
		return lx.scanNewline()

	case b == '/':
		// '/': comment, regex (JS, position permitting), or the operator
		if tok, ok := lx.scanCommentOrSlash(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()

	case b == '\'' || b == '"':
		return lx.scanString(b)

	case b == '`' && lx.opts.Language == lang.JS:
		return lx.scanTemplate()

	case isDec(b):
		return lx.scanNumber()

	case b == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case lx.isIdentStart():
		return lx.scanIdent()

	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
