package rules

import (
	"strings"

	"github.com/step1profit/juicer/internal/token"
)

// StripComments drops comment tokens. "/*!" comments carry license text and
// survive verbatim.
type StripComments struct{}

func (StripComments) Name() string { return "strip-comments" }

func (StripComments) Transform(toks []token.Token, _ *Context) ([]token.Token, error) {
	out := toks[:0]
	for _, t := range toks {
		if t.Kind == token.Comment && !isBangComment(t.Text) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func isBangComment(text string) bool {
	return strings.HasPrefix(text, "/*!")
}
