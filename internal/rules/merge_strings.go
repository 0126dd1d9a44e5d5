package rules

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// MergeStrings folds "a" + "b" into "ab". Only plain single- or double-quoted
// literals with the same quote character merge; templates never do. The fold
// only runs where the first literal provably sits in a plain operand
// position: anything binding tighter than + on either side, including unary
// operators and typeof/void/delete, would regroup the expression.
type MergeStrings struct{}

func (MergeStrings) Name() string { return "merge-strings" }

func (MergeStrings) Transform(toks []token.Token, ctx *Context) ([]token.Token, error) {
	if ctx.Language != lang.JS || ctx.Options.PreserveStrings {
		return toks, nil
	}
	out := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if !isPlainString(t) {
			out = append(out, t)
			continue
		}
		if !safeFoldPrefix(out) {
			// "x * 'a' + 'b'" must not regroup into "x * 'ab'", and
			// "typeof 'a' + 'b'" applies typeof to the first literal only
			out = append(out, t)
			continue
		}
		// fold left as long as "+ <string>" follows
		for {
			plus := nextSignificant(toks, i+1)
			if plus < 0 || toks[plus].Kind != token.Operator || toks[plus].Text != "+" {
				break
			}
			second := nextSignificant(toks, plus+1)
			if second < 0 || !isPlainString(toks[second]) {
				break
			}
			if toks[second].Text[0] != t.Text[0] {
				break
			}
			after := nextSignificant(toks, second+1)
			if after >= 0 && bindsTighterThanPlus(toks[after]) {
				break
			}
			t = mergedString(t, toks[second])
			i = second
		}
		out = append(out, t)
	}
	return out, nil
}

func lastSignificant(toks []token.Token) int {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].IsSignificant() {
			return i
		}
	}
	return -1
}

func isPlainString(t token.Token) bool {
	return t.Kind == token.String && len(t.Text) >= 2 &&
		(t.Text[0] == '\'' || t.Text[0] == '"')
}

func bindsTighterThanPlus(t token.Token) bool {
	if t.Kind != token.Operator {
		return false
	}
	switch t.Text {
	case "*", "/", "%", "**":
		return true
	}
	return false
}

// safeFoldPrefix reports whether the token stream so far leaves the next
// string literal in a plain operand position. The allowlist is deliberately
// narrow: any prefix it does not recognize, unary operators and the operator
// keywords among them, vetoes the fold.
func safeFoldPrefix(out []token.Token) bool {
	i := lastSignificant(out)
	if i < 0 {
		return true
	}
	t := out[i]
	switch t.Kind {
	case token.Punct:
		switch t.Text {
		case "(", "[", "{", ",", ";", ":", "}":
			return true
		}
	case token.Keyword:
		switch t.Text {
		case "return", "case":
			return true
		}
	case token.Operator:
		switch t.Text {
		case "=", "&&", "||", "??":
			return true
		case "+":
			// binary only when an operand closes on the left; a unary
			// plus coerces its literal before the concatenation
			j := lastSignificant(out[:i])
			if j < 0 {
				return false
			}
			switch out[j].Kind {
			case token.Ident, token.Number, token.String, token.Regex:
				return true
			case token.Punct:
				return out[j].Text == ")" || out[j].Text == "]"
			}
		}
	}
	return false
}

func mergedString(a, b token.Token) token.Token {
	quote := a.Text[:1]
	inner := a.Text[1:len(a.Text)-1] + b.Text[1:len(b.Text)-1]
	return token.Token{
		Kind: token.String,
		Span: a.Span.Cover(b.Span),
		Text: quote + inner + quote,
	}
}
