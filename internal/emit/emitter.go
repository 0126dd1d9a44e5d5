package emit

import (
	"strings"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// Emitter renders a rewritten token stream back to text. Tokens that were
// byte-adjacent in the original source are written back to back; between all
// other pairs a space is inserted exactly when gluing them would change how
// the output tokenizes.
type Emitter struct {
	language lang.Language
	opts     config.Options

	probe mergeProbe
}

// New creates an emitter for one language and option set. An emitter is
// reusable but not safe for concurrent use.
func New(language lang.Language, opts config.Options) *Emitter {
	return &Emitter{
		language: language,
		opts:     opts,
		probe:    newMergeProbe(language),
	}
}

// Emit renders the token stream. Whitespace and newline tokens still present
// are written as a single space or line feed; everything else is written as
// its text.
func (e *Emitter) Emit(toks []token.Token) string {
	var sb strings.Builder
	col := 0
	parens := 0
	var prev token.Token
	havePrev := false

	for _, t := range toks {
		switch t.Kind {
		case token.EOF:
			continue
		case token.Newline:
			sb.WriteByte('\n')
			col = 0
			havePrev = false
			continue
		case token.Whitespace:
			sb.WriteByte(' ')
			col++
			havePrev = false
			continue
		}

		if havePrev && !token.Adjacent(prev, t) && e.probe.wouldMerge(prev, t) {
			sb.WriteByte(' ')
			col++
		}
		sb.WriteString(t.Text)
		col = advanceColumn(col, t.Text)
		prev = t
		havePrev = true

		switch {
		case t.IsPunctText("("), t.IsPunctText("["):
			parens++
		case t.IsPunctText(")"), t.IsPunctText("]"):
			if parens > 0 {
				parens--
			}
		}

		if e.shouldBreak(t, col, parens) {
			sb.WriteByte('\n')
			col = 0
			havePrev = false
		}
	}
	return sb.String()
}

// shouldBreak reports whether a line break goes after t. Breaks only happen
// at statement or rule boundaries, so they never change meaning.
func (e *Emitter) shouldBreak(t token.Token, col, parens int) bool {
	if e.opts.LineBreakColumn < 0 || col < e.opts.LineBreakColumn {
		return false
	}
	if e.language == lang.CSS {
		return t.IsPunctText("}")
	}
	return parens == 0 && (t.IsPunctText(";") || t.IsPunctText("}"))
}

func advanceColumn(col int, text string) int {
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		return len(text) - i - 1
	}
	return col + len(text)
}
