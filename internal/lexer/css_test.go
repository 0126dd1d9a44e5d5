package lexer_test

import (
	"testing"

	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

func TestCSSIdentifiers(t *testing.T) {
	tests := []string{
		"color",
		"font-size",
		"-webkit-transform",
		"-moz-border-radius",
		"--custom-prop",
		"@media",
		"@import",
		"@-webkit-keyframes",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, lang.CSS, input, token.Ident, input)
		})
	}
}

func TestCSSNumbersAndUnits(t *testing.T) {
	tests := []struct {
		input string
		texts []string
		kinds []token.Kind
	}{
		{"5px", []string{"5", "px"}, []token.Kind{token.Number, token.Ident}},
		{"2em", []string{"2", "em"}, []token.Kind{token.Number, token.Ident}},
		{".5em", []string{".5", "em"}, []token.Kind{token.Number, token.Ident}},
		{"1.25rem", []string{"1.25", "rem"}, []token.Kind{token.Number, token.Ident}},
		{"100%", []string{"100", "%"}, []token.Kind{token.Number, token.Operator}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input, lang.CSS)
			tokens := significantTokens(lx)
			if len(tokens) != len(tt.texts) {
				t.Fatalf("got %v, want texts %v", tokensToString(tokens), tt.texts)
			}
			for i, tok := range tokens {
				if tok.Text != tt.texts[i] || tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: got %v(%q), want %v(%q)", i, tok.Kind, tok.Text, tt.kinds[i], tt.texts[i])
				}
			}
		})
	}
}

func TestCSSUnitAdjacency(t *testing.T) {
	// "5px" must lex as two byte-adjacent tokens so the emitter can tell it
	// apart from "5 px"
	lx, _ := makeTestLexer("5px", lang.CSS)
	num := lx.Next()
	unit := lx.Next()
	if !token.Adjacent(num, unit) {
		t.Errorf("expected adjacent spans, got %v and %v", num.Span, unit.Span)
	}

	lx, _ = makeTestLexer("5 px", lang.CSS)
	num = lx.Next()
	_ = lx.Next() // whitespace
	unit = lx.Next()
	if token.Adjacent(num, unit) {
		t.Errorf("expected non-adjacent spans, got %v and %v", num.Span, unit.Span)
	}
}

func TestCSSSelectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"class", ".foo", []token.Kind{token.Punct, token.Ident}},
		{"id", "#header", []token.Kind{token.Punct, token.Ident}},
		{"hex_color", "#f0f0f0", []token.Kind{token.Punct, token.Ident}},
		{"pseudo", "a:hover", []token.Kind{token.Ident, token.Punct, token.Ident}},
		{"child", "ul > li", []token.Kind{token.Ident, token.Operator, token.Ident}},
		{"universal", "* { }", []token.Kind{token.Operator, token.Punct, token.Punct}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, lang.CSS, tt.input, tt.want)
		})
	}
}

func TestCSSRule(t *testing.T) {
	expectKinds(t, lang.CSS, ".foo { color : red ; }", []token.Kind{
		token.Punct, token.Ident,
		token.Punct, token.Ident, token.Punct, token.Ident, token.Punct, token.Punct,
	})
}

func TestCSSStrings(t *testing.T) {
	for _, input := range []string{`"Helvetica Neue"`, `'icons.png'`, `"quo\"te"`} {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, lang.CSS, input, token.String, input)
		})
	}
}

func TestCSSComments(t *testing.T) {
	lx, _ := makeTestLexer("a /* note */ b", lang.CSS)
	tokens := significantTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("comments must be insignificant: %v", tokensToString(tokens))
	}

	lx, _ = makeTestLexer("/*! keep me */", lang.CSS)
	tok := lx.Next()
	if tok.Kind != token.Comment || tok.Text != "/*! keep me */" {
		t.Errorf("got %v(%q)", tok.Kind, tok.Text)
	}
}

func TestCSSNoLineComments(t *testing.T) {
	// "//" is not a comment in CSS
	lx, _ := makeTestLexer("a // b", lang.CSS)
	tokens := significantTokens(lx)
	want := []string{"a", "/", "/", "b"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Text != want[i] {
			t.Errorf("token %d: got %q, want %q", i, tok.Text, want[i])
		}
	}
}

func TestCSSNegativeValue(t *testing.T) {
	expectKinds(t, lang.CSS, "margin:-5px", []token.Kind{
		token.Ident, token.Punct, token.Operator, token.Number, token.Ident,
	})
}
