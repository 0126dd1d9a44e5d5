package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/lexer"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string, language lang.Language) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	name := "test.js"
	if language == lang.CSS {
		name = "test.css"
	}
	fileID := fs.AddVirtual(name, []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Language: language, Reporter: reporter})
	return lx, reporter
}

// significantTokens drains the lexer and drops spacing/comment tokens and EOF.
func significantTokens(lx *lexer.Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		if tok.IsSignificant() {
			out = append(out, tok)
		}
	}
}

func allTokens(lx *lexer.Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func expectKinds(t *testing.T, language lang.Language, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input, language)
	tokens := significantTokens(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, language lang.Language, input string, kind token.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input, language)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v", kind, tok.Kind)
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== scan_ident.go ======

func TestJSIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"_bar", token.Ident},
		{"$", token.Ident},
		{"$el", token.Ident},
		{"x123", token.Ident},
		{"camelCase", token.Ident},
		{"переменная", token.Ident},
		{"function", token.Keyword},
		{"var", token.Keyword},
		{"return", token.Keyword},
		{"Function", token.Ident}, // keywords are case-sensitive
		{"VAR", token.Ident},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, lang.JS, tt.input, tt.kind, tt.input)
		})
	}
}

// ====== scan_number.go ======

func TestJSNumbers(t *testing.T) {
	tests := []string{
		"0", "123", "456789",
		"0x0", "0xDEADBEEF", "0Xff",
		"0b1010", "0o777",
		"1.0", "3.14", ".5", "1.",
		"1e10", "1E10", "1e+10", "1e-10", "3.14e-2",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, lang.JS, input, token.Number, input)
		})
	}
}

func TestJSNumbers_BadExponent(t *testing.T) {
	for _, input := range []string{"1e", "1e+", "1e-"} {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input, lang.JS)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid, got %v", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected LexBadNumber report")
			}
		})
	}
}

func TestJSNumbers_DotMember(t *testing.T) {
	// "1 .toString" keeps the dot a member access, not a fraction
	expectKinds(t, lang.JS, "1 .toString", []token.Kind{
		token.Number, token.Punct, token.Ident,
	})
}

// ====== scan_string.go ======

func TestJSStrings(t *testing.T) {
	tests := []string{
		`""`, `"hello"`, `'single'`, `"with \" escape"`, `'it\'s'`,
		`"tab\there"`, `"\\"`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, lang.JS, input, token.String, input)
		})
	}
}

func TestJSStrings_Unterminated(t *testing.T) {
	for _, input := range []string{`"hello`, `'world`, "\"line\nbreak\""} {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input, lang.JS)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("expected Invalid, got %v", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("expected LexUnterminatedString report")
			}
		})
	}
}

func TestJSTemplates(t *testing.T) {
	tests := []string{
		"``",
		"`plain`",
		"`multi\nline`",
		"`a ${x} b`",
		"`a ${ {k: 1} } b`",          // braces inside substitution
		"`outer ${ `inner ${y}` } z`", // nested template
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, lang.JS, input, token.String, input)
		})
	}
}

func TestJSTemplates_Unterminated(t *testing.T) {
	lx, reporter := makeTestLexer("`no end ${x}", lang.JS)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected error report")
	}
}

// ====== scan_regex.go ======

func TestJSRegex_Positions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"after_assign", "a = /re/g", []token.Kind{token.Ident, token.Operator, token.Regex}},
		{"after_lparen", "f(/re/)", []token.Kind{token.Ident, token.Punct, token.Regex, token.Punct}},
		{"after_return", "return /re/;", []token.Kind{token.Keyword, token.Regex, token.Punct}},
		{"after_comma", "[/a/, /b/]", []token.Kind{token.Punct, token.Regex, token.Punct, token.Regex, token.Punct}},
		{"start_of_input", "/^x$/i", []token.Kind{token.Regex}},
		{"class_protects_slash", "/[/]/", []token.Kind{token.Regex}},

		{"division_after_ident", "a / b", []token.Kind{token.Ident, token.Operator, token.Ident}},
		{"division_after_number", "1 / 2", []token.Kind{token.Number, token.Operator, token.Number}},
		{"division_after_rparen", "(a + b) / 2", []token.Kind{
			token.Punct, token.Ident, token.Operator, token.Ident, token.Punct,
			token.Operator, token.Number,
		}},
		{"division_after_this", "this / 2", []token.Kind{token.Keyword, token.Operator, token.Number}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, lang.JS, tt.input, tt.want)
		})
	}
}

func TestJSRegex_Unterminated(t *testing.T) {
	for _, input := range []string{"x = /never", "x = /line\n/"} {
		t.Run(input, func(t *testing.T) {
			lx, reporter := makeTestLexer(input, lang.JS)
			for {
				tok := lx.Next()
				if tok.Kind == token.EOF {
					break
				}
			}
			if !reporter.HasErrors() {
				t.Error("expected LexUnterminatedRegex report")
			}
		})
	}
}

// ====== scan_comment.go ======

func TestJSComments(t *testing.T) {
	lx, _ := makeTestLexer("a // line\nb /* block */ c", lang.JS)
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.Ident, token.Whitespace, token.Comment, token.Newline,
		token.Ident, token.Whitespace, token.Comment, token.Whitespace, token.Ident,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestJSComments_UnterminatedBlock(t *testing.T) {
	lx, reporter := makeTestLexer("a /* never closed", lang.JS)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
	}
	if !reporter.HasErrors() {
		t.Error("expected LexUnterminatedBlockComment report")
	}
}

// ====== scan_ops.go ======

func TestJSOperators_Greedy(t *testing.T) {
	tests := []struct {
		input string
		texts []string
	}{
		{"===", []string{"==="}},
		{"==", []string{"=="}},
		{"=>", []string{"=>"}},
		{">>>=", []string{">>>="}},
		{">>>", []string{">>>"}},
		{"...", []string{"..."}},
		{"?.", []string{"?."}},
		{"??", []string{"??"}},
		{"++", []string{"++"}},
		{"+ ++", []string{"+", "++"}},
		{"a?.3:b", []string{"a", "?", ".3", ":", "b"}}, // ?. never eats a ternary
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input, lang.JS)
			tokens := significantTokens(lx)
			if len(tokens) != len(tt.texts) {
				t.Fatalf("got %v, want texts %v", tokensToString(tokens), tt.texts)
			}
			for i, tok := range tokens {
				if tok.Text != tt.texts[i] {
					t.Errorf("token %d: got %q, want %q", i, tok.Text, tt.texts[i])
				}
			}
		})
	}
}

func TestJSUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("\\", lang.JS)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("expected LexUnknownChar report")
	}
}

// ====== whitespace/newline tokens ======

func TestWhitespaceCoalescing(t *testing.T) {
	lx, _ := makeTestLexer("a  \t  b\n\n\nc", lang.JS)
	tokens := allTokens(lx)
	want := []token.Kind{
		token.Ident, token.Whitespace, token.Ident,
		token.Newline, token.Ident, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	for i := range want {
		if tokens[i].Kind != want[i] {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Kind, want[i])
		}
	}
}

// ====== integration ======

func TestJSFunctionDefinition(t *testing.T) {
	expectKinds(t, lang.JS, "function add(a, b) { return a + b; }", []token.Kind{
		token.Keyword, token.Ident,
		token.Punct, token.Ident, token.Punct, token.Ident, token.Punct,
		token.Punct, token.Keyword, token.Ident, token.Operator, token.Ident,
		token.Punct, token.Punct,
	})
}

func TestLexer_PeekBehavior(t *testing.T) {
	lx, _ := makeTestLexer("a b", lang.JS)

	peek1 := lx.Peek()
	peek2 := lx.Peek()
	if peek1 != peek2 {
		t.Error("repeated Peek should return the same token")
	}
	next := lx.Next()
	if next != peek1 {
		t.Error("Next should return the peeked token")
	}
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x", lang.JS)
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF again, got %v", tok.Kind)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("", lang.JS)
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("expected EOF for empty input, got %v", tok.Kind)
	}
}

func TestTokenize_SpansCoverSource(t *testing.T) {
	input := "var x = 'str' + 2;"
	lx, _ := makeTestLexer(input, lang.JS)
	tokens := allTokens(lx)

	var prevEnd uint32
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Span.Start != prevEnd {
			t.Errorf("token %q: gap %d..%d", tok.Text, prevEnd, tok.Span.Start)
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span slice %q != text %q", got, tok.Text)
		}
		prevEnd = tok.Span.End
	}
	if prevEnd != uint32(len(input)) {
		t.Errorf("tokens stop at %d, want %d", prevEnd, len(input))
	}
}

// Бенчмарки

func BenchmarkLexerJS(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString(fmt.Sprintf("function f%d(arg1, arg2) { return arg1 + arg2; }\n", i))
	}
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.js", []byte(sb.String()))
	file := fs.Get(fileID)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx := lexer.New(file, lexer.Options{Language: lang.JS})
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
		}
	}
}
