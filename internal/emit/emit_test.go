package emit_test

import (
	"strings"
	"testing"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/emit"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/lexer"
	"github.com/step1profit/juicer/internal/rules"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

func lexInput(t *testing.T, input string, language lang.Language) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	name := "emit_test.js"
	if language == lang.CSS {
		name = "emit_test.css"
	}
	file := fs.Get(fs.AddVirtual(name, []byte(input)))

	bag := diag.NewBag(16)
	toks := lexer.Tokenize(file, lexer.Options{Language: language, Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("lex errors in %q: %v", input, bag.Items())
	}
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}
	return toks
}

func minify(t *testing.T, input string, language lang.Language, opts config.Options) string {
	t.Helper()
	ctx := &rules.Context{Language: language, Options: opts}
	out, err := rules.Apply(rules.Default(), lexInput(t, input, language), ctx)
	if err != nil {
		t.Fatalf("rules failed on %q: %v", input, err)
	}
	return emit.New(language, opts).Emit(out)
}

func noMunge() config.Options {
	opts := config.Default()
	opts.MungeIdentifiers = false
	return opts
}

func TestEmitJS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"function", "function add ( a , b ) { return a + b ; }", "function add(a,b){return a+b;}"},
		{"keyword_spacing", "var x = 1 ;", "var x=1;"},
		{"return_value", "return x ;", "return x;"},
		{"plus_plus", "a + + b", "a+ +b"},
		{"plus_increment", "a + ++ b", "a+ ++b"},
		{"minus_minus", "a - - b", "a- -b"},
		{"increment_glued", "a ++", "a++"},
		{"number_dot", "1 .toString ( )", "1 .toString()"},
		{"string_pair", `f ( "a" , "b" )`, `f("a","b")`},
		{"division", "x = a / b ;", "x=a/b;"},
		{"regex_preserved", "x = /ab c/g ;", "x=/ab c/g;"},
		{"comment_dropped", "a /* note */ + b", "a+b"},
		{"empty_statements", "a ( ) ; ; b ( ) ;", "a();b();"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minify(t, tt.input, lang.JS, noMunge()); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestEmitCSS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rule", ".foo \n { color : red ; }", ".foo{color:red}"},
		{"descendant", "div p { margin : 0 auto ; }", "div p{margin:0 auto}"},
		{"descendant_class", ".foo .bar { color : red ; }", ".foo .bar{color:red}"},
		{"descendant_id", "ul #id { margin : 0 ; }", "ul #id{margin:0}"},
		{"descendant_attr", "a [href] { color : blue ; }", "a [href]{color:blue}"},
		{"value_list", "p { background : url(a.png) no-repeat ; }", "p{background:url(a.png) no-repeat}"},
		{"dimension", "a { margin : 5px ; }", "a{margin:5px}"},
		{"pseudo_selector", "a :hover { color : red ; }", "a :hover{color:red}"},
		{"attached_pseudo", "a:hover { color : red ; }", "a:hover{color:red}"},
		{"media_query", "@media screen and (max-width : 100px) { a { color : red ; } }",
			"@media screen and (max-width:100px){a{color:red}}"},
		{"bang_comment", "/*! (c) someone */ a { color : red ; }", "/*! (c) someone */a{color:red}"},
		{"font_shorthand", "p { font : 12px / 1.5 serif ; }", "p{font:12px/1.5 serif}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minify(t, tt.input, lang.CSS, config.Default()); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestEmit_SignificantNewlines(t *testing.T) {
	got := minify(t, "a = 1\nb = 2", lang.JS, noMunge())
	if got != "a=1\nb=2" {
		t.Errorf("got %q", got)
	}

	got = minify(t, "return\nx", lang.JS, noMunge())
	if got != "return\nx" {
		t.Errorf("restricted production newline dropped: %q", got)
	}
}

// Re-tokenizing the output must yield the significant tokens the emitter was
// given: minification never glues two tokens into one.
func TestEmit_NoTokenMerge(t *testing.T) {
	inputs := []string{
		"a + + b",
		"a - - b",
		"a + ++ b",
		"x = a / b ; y = /re/g ;",
		"1 .toString ( )",
		`s = "a" , t = 'b'`,
		"i ++ ; i -- ;",
		"a < < b", // nonsense input, but the pair must survive
		"x ! = y",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			toks := lexInput(t, input, lang.JS)
			var want []string
			for _, tok := range toks {
				if tok.IsSignificant() {
					want = append(want, tok.Text)
				}
			}

			out := emit.New(lang.JS, noMunge()).Emit(toks)
			var got []string
			for _, tok := range lexInput(t, out, lang.JS) {
				if tok.IsSignificant() {
					got = append(got, tok.Text)
				}
			}
			if strings.Join(got, "\x00") != strings.Join(want, "\x00") {
				t.Errorf("output %q re-tokenizes to %v, want %v", out, got, want)
			}
		})
	}
}

func TestEmit_Idempotent(t *testing.T) {
	inputs := map[lang.Language][]string{
		lang.JS: {
			"function add ( a , b ) { return a + b ; }",
			"a + + b",
			"var x = 1 ; var y = 2 ;",
			"x = /re/g . test ( s ) ;",
		},
		lang.CSS: {
			".foo { color : red ; }",
			"div p { margin : 0 auto ; }",
			".foo .bar { color : red ; }",
			"@media screen and (max-width : 10em) { a { color : red } }",
		},
	}
	for language, cases := range inputs {
		for _, input := range cases {
			t.Run(input, func(t *testing.T) {
				once := minify(t, input, language, noMunge())
				twice := minify(t, once, language, noMunge())
				if once != twice {
					t.Errorf("not idempotent:\nonce  %q\ntwice %q", once, twice)
				}
			})
		}
	}
}

func TestEmit_LineBreakColumn(t *testing.T) {
	opts := noMunge()
	opts.LineBreakColumn = 10
	got := minify(t, "a ( ) ; b ( ) ; c ( ) ; d ( ) ;", lang.JS, opts)
	for _, line := range strings.Split(got, "\n") {
		// a break lands at the first boundary past the column, so a line can
		// overshoot by at most one statement
		if len(line) > 14 {
			t.Errorf("line %q too long", line)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("no breaks inserted: %q", got)
	}
	if strings.Join(strings.Split(got, "\n"), "") != "a();b();c();d();" {
		t.Errorf("breaking changed content: %q", got)
	}
}

func TestEmit_LineBreakColumnZero(t *testing.T) {
	opts := config.Default()
	opts.LineBreakColumn = 0
	got := minify(t, "a { color : red } b { color : blue }", lang.CSS, opts)
	if got != "a{color:red}\nb{color:blue}\n" && got != "a{color:red}\nb{color:blue}" {
		t.Errorf("got %q", got)
	}
}

func TestEmit_LineBreakDisabled(t *testing.T) {
	got := minify(t, "a ( ) ; b ( ) ; c ( ) ;", lang.JS, noMunge())
	if strings.Contains(got, "\n") {
		t.Errorf("unexpected break: %q", got)
	}
}
