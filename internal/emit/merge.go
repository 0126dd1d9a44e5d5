package emit

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/lexer"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

// mergeProbe answers "does gluing these two tokens together re-tokenize to
// something else?" by actually lexing the concatenation. That is exact for
// every pair the lexer can produce, including the context-sensitive ones:
// "/" followed by "/" becomes a comment, "1" followed by "." becomes a
// number, ")" followed by a regex becomes a division.
type mergeProbe struct {
	language lang.Language
	cache    map[string]bool
}

func newMergeProbe(language lang.Language) mergeProbe {
	return mergeProbe{language: language, cache: make(map[string]bool)}
}

func (p *mergeProbe) wouldMerge(prev, next token.Token) bool {
	key := prev.Text + "\x00" + next.Text
	if v, ok := p.cache[key]; ok {
		return v
	}
	v := p.relexDiffers(prev, next)
	p.cache[key] = v
	return v
}

func (p *mergeProbe) relexDiffers(prev, next token.Token) bool {
	if next.Text == "" {
		return false
	}
	// A lone "/" lexes as a regex opener at the start of the probe, but in
	// the real output it sits in division position. Gluing is safe there
	// unless the next token would extend it to a comment or "/=".
	if p.language == lang.JS && prev.Kind == token.Operator && prev.Text == "/" {
		b := next.Text[0]
		return b == '/' || b == '*' || b == '='
	}
	// A number glued to a word still re-tokenizes as two tokens, but the
	// pair changes meaning: "0 auto" is two CSS values while "0auto" is a
	// dimension, and JS engines reject "1in" outright.
	if prev.Kind == token.Number {
		switch next.Kind {
		case token.Ident, token.Keyword:
			return true
		}
		if p.language == lang.CSS && next.Text == "%" {
			return true
		}
	}
	// Пробел в CSS сам по себе синтаксис: "url(a) no-repeat" и ".foo .bar"
	// нельзя склеивать, даже если токены после склейки лексируются так же.
	if p.language == lang.CSS && cssSpaceIsSyntax(prev, next) {
		return true
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("probe", []byte(prev.Text+next.Text)))

	var got []token.Token
	for _, t := range lexer.Tokenize(file, lexer.Options{Language: p.language}) {
		if t.Kind == token.EOF {
			break
		}
		if t.Kind == token.Invalid {
			return true
		}
		got = append(got, t)
	}
	if len(got) != 2 {
		return true
	}
	return got[0].Kind != prev.Kind || got[0].Text != prev.Text ||
		got[1].Kind != next.Kind || got[1].Text != next.Text
}

// cssSpaceIsSyntax reports whether a space between the pair separates two
// selector compounds or two declaration values, where adjacency itself would
// join them into one construct.
func cssSpaceIsSyntax(prev, next token.Token) bool {
	switch {
	case prev.Kind == token.Ident || prev.Kind == token.String:
	case prev.Kind == token.Punct && (prev.Text == ")" || prev.Text == "]"):
	case prev.Kind == token.Operator && prev.Text == "*":
	default:
		return false
	}
	switch next.Kind {
	case token.Ident, token.Number, token.String:
		return true
	case token.Punct:
		return next.Text == "." || next.Text == "#" || next.Text == "["
	case token.Operator:
		return next.Text == "*"
	}
	return false
}
