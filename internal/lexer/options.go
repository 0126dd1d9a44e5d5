package lexer

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Language selects the lexical grammar (JS or CSS).
	Language lang.Language
	// Reporter receives lexical diagnostics; nil drops them (lexing continues).
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
