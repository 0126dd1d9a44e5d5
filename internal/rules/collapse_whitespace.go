package rules

import (
	"strings"

	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// CollapseWhitespace removes whitespace and newline tokens that carry no
// meaning. For JS a newline survives when dropping it could change automatic
// semicolon insertion. For CSS a space survives where it separates selector
// parts or media query operators.
type CollapseWhitespace struct{}

func (CollapseWhitespace) Name() string { return "collapse-whitespace" }

func (CollapseWhitespace) Transform(toks []token.Token, ctx *Context) ([]token.Token, error) {
	if ctx.Language == lang.CSS {
		return collapseCSS(toks), nil
	}
	return collapseJS(toks), nil
}

func collapseJS(toks []token.Token) []token.Token {
	out := toks[:0]
	var prev token.Token
	havePrev := false
	for i, t := range toks {
		switch t.Kind {
		case token.Whitespace:
			continue
		case token.Newline:
			next := nextSignificant(toks, i+1)
			if !havePrev || next < 0 {
				continue
			}
			if canEndStatement(prev) && canBeginStatement(toks[next]) {
				out = append(out, t)
			}
			continue
		}
		out = append(out, t)
		if t.IsSignificant() {
			prev = t
			havePrev = true
		}
	}
	return out
}

// canEndStatement reports whether a newline after t may terminate a statement
// under automatic semicolon insertion.
func canEndStatement(t token.Token) bool {
	switch t.Kind {
	case token.Ident, token.Number, token.String, token.Regex:
		return true
	case token.Keyword:
		switch t.Text {
		case "this", "true", "false", "null", "undefined", "super",
			"return", "break", "continue", "throw", "yield", "debugger":
			return true
		}
	case token.Punct:
		switch t.Text {
		case ")", "]", "}":
			return true
		}
	case token.Operator:
		switch t.Text {
		case "++", "--":
			return true
		}
	}
	return false
}

// canBeginStatement reports whether t may start a new statement, making a
// preceding newline load-bearing.
func canBeginStatement(t token.Token) bool {
	switch t.Kind {
	case token.Ident, token.Number, token.String, token.Regex, token.Keyword:
		return true
	case token.Punct:
		switch t.Text {
		case "(", "[", "{":
			return true
		}
	case token.Operator:
		return t.Text[0] == '+' || t.Text[0] == '-' || t.Text[0] == '~' || t.Text[0] == '!'
	}
	return false
}

func collapseCSS(toks []token.Token) []token.Token {
	out := toks[:0]
	var prev token.Token
	havePrev := false
	for i, t := range toks {
		if t.Kind == token.Whitespace || t.Kind == token.Newline {
			next := nextSignificant(toks, i+1)
			if !havePrev || next < 0 {
				continue
			}
			if cssSpaceSignificant(toks, prev, next) {
				t.Kind = token.Whitespace
				t.Text = " "
				out = append(out, t)
			}
			continue
		}
		out = append(out, t)
		if t.IsSignificant() {
			prev = t
			havePrev = true
		}
	}
	return out
}

func cssSpaceSignificant(toks []token.Token, prev token.Token, next int) bool {
	nt := toks[next]
	// "@media screen and (max-width: 100px)" breaks as "and(...)"
	if prev.Kind == token.Ident && nt.IsPunctText("(") {
		switch strings.ToLower(prev.Text) {
		case "and", "or", "not", "only":
			return true
		}
	}
	// "a :hover" is a descendant selector, "color : red" is a declaration.
	// A colon belongs to a selector when a block opens before the current
	// declaration or rule ends.
	if nt.IsPunctText(":") && colonInSelector(toks, next) {
		return true
	}
	// ".foo .bar" is a descendant combinator; glued together the two
	// compounds read as one selector. Re-tokenizing cannot tell the
	// difference, so the space has to survive the collapse.
	if endsCompoundSelector(prev) && beginsCompoundSelector(nt) && inSelectorPrelude(toks, next) {
		return true
	}
	return false
}

func endsCompoundSelector(t token.Token) bool {
	switch t.Kind {
	case token.Ident:
		return true
	case token.Punct:
		return t.Text == "]" || t.Text == ")"
	case token.Operator:
		return t.Text == "*"
	}
	return false
}

func beginsCompoundSelector(t token.Token) bool {
	switch t.Kind {
	case token.Ident:
		return true
	case token.Punct:
		return t.Text == "." || t.Text == "#" || t.Text == "["
	case token.Operator:
		return t.Text == "*"
	}
	return false
}

// colonInSelector scans forward from the colon: hitting "{" before the
// current declaration or rule ends means we are still inside a selector.
func colonInSelector(toks []token.Token, colon int) bool {
	return inSelectorPrelude(toks, colon+1)
}

// inSelectorPrelude scans forward balancing parentheses. Hitting "{" at depth
// zero means the position belongs to a selector or at-rule prelude; ";", "}"
// or an unbalanced ")" means it sits inside a declaration or paren group, as
// in "@media (max-width : 100px)".
func inSelectorPrelude(toks []token.Token, from int) bool {
	depth := 0
	for i := from; i < len(toks); i++ {
		if toks[i].Kind != token.Punct {
			continue
		}
		switch toks[i].Text {
		case "(":
			depth++
		case ")":
			if depth == 0 {
				return false
			}
			depth--
		case "{":
			if depth == 0 {
				return true
			}
		case ";", "}":
			return false
		}
	}
	return false
}
