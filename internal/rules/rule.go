package rules

import (
	"errors"
	"fmt"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// Context carries everything a rule needs besides the token stream itself.
type Context struct {
	Language lang.Language
	Options  config.Options
	Reporter diag.Reporter
}

// Rule rewrites a token stream. Rules may drop, merge and retext tokens but
// must keep the stream ordered by source position: every surviving token's
// span starts at or after the previous token's span ends.
type Rule interface {
	Name() string
	Transform(toks []token.Token, ctx *Context) ([]token.Token, error)
}

// ErrConflict reports that a rule broke the stream ordering invariant.
var ErrConflict = errors.New("rule produced an out-of-order token stream")

// Apply runs the rules in order, validating the ordering invariant after each
// one. The input slice is not modified.
func Apply(ruleSet []Rule, toks []token.Token, ctx *Context) ([]token.Token, error) {
	if ctx.Reporter == nil {
		ctx.Reporter = diag.NopReporter{}
	}
	out := make([]token.Token, len(toks))
	copy(out, toks)

	for _, r := range ruleSet {
		next, err := r.Transform(out, ctx)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.Name(), err)
		}
		if i, ok := firstDisorder(next); !ok {
			ctx.Reporter.Report(diag.RuleConflict, diag.SevError, next[i].Span,
				fmt.Sprintf("rule %s emitted token %q before the end of the previous one", r.Name(), next[i].Text),
				nil)
			return nil, fmt.Errorf("rule %s: %w", r.Name(), ErrConflict)
		}
		out = next
	}
	return out, nil
}

// firstDisorder returns the index of the first token that starts before the
// previous token ends; ok is true when the stream is ordered.
func firstDisorder(toks []token.Token) (int, bool) {
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1], toks[i]
		if prev.Span.File != cur.Span.File {
			continue
		}
		if cur.Span.Start < prev.Span.End {
			return i, false
		}
	}
	return 0, true
}

// nextSignificant returns the index of the first significant token at or
// after i, or -1.
func nextSignificant(toks []token.Token, i int) int {
	for ; i < len(toks); i++ {
		if toks[i].IsSignificant() {
			return i
		}
	}
	return -1
}

// prevSignificant returns the index of the last significant token at or
// before i, or -1.
func prevSignificant(toks []token.Token, i int) int {
	for ; i >= 0; i-- {
		if toks[i].IsSignificant() {
			return i
		}
	}
	return -1
}
