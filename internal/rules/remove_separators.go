package rules

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// RemoveRedundantSeparators drops semicolons that separate nothing. For JS
// that means empty statements: a semicolon at the start of the stream, right
// after "{", or right after another ";". The one before a closing brace
// stays, and so does one after "}", because removing it can change what a
// following construct attaches to. CSS needs no separator before "}" at all,
// so there the trailing one goes too.
type RemoveRedundantSeparators struct{}

func (RemoveRedundantSeparators) Name() string { return "remove-separators" }

func (RemoveRedundantSeparators) Transform(toks []token.Token, ctx *Context) ([]token.Token, error) {
	if ctx.Language == lang.CSS {
		return stripCSSSemis(toks), nil
	}
	return stripJSSemis(toks), nil
}

func stripJSSemis(toks []token.Token) []token.Token {
	out := toks[:0]
	parens := 0
	var lastSig token.Token
	haveSig := false
	for _, t := range toks {
		switch {
		case t.IsPunctText("("):
			parens++
		case t.IsPunctText(")"):
			if parens > 0 {
				parens--
			}
		case t.IsPunctText(";") && parens == 0:
			// for(;;) headers are guarded by the paren depth; elsewhere a
			// semicolon with no statement before it is an empty statement
			if !haveSig || lastSig.IsPunctText(";") || lastSig.IsPunctText("{") {
				continue
			}
		}
		out = append(out, t)
		if t.IsSignificant() {
			lastSig = t
			haveSig = true
		}
	}
	return out
}

func stripCSSSemis(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i, t := range toks {
		if t.IsPunctText(";") {
			next := nextSignificant(toks, i+1)
			if next < 0 || toks[next].IsPunctText(";") || toks[next].IsPunctText("}") {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
