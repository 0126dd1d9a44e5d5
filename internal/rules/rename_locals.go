package rules

import (
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/token"
)

// RenameLocals renames function-local identifiers (parameters, vars, inner
// function names) to the shortest free names. Only names provably local to a
// function body are touched; anything reachable from outside keeps its name.
//
// The analysis is token-level, so it bails out of any scope where bindings
// cannot be tracked without a full parse: eval, with, arrow functions, class
// bodies and destructuring patterns all disable munging for the scopes that
// contain them.
type RenameLocals struct{}

func (RenameLocals) Name() string { return "rename-locals" }

func (RenameLocals) Transform(toks []token.Token, ctx *Context) ([]token.Token, error) {
	if ctx.Language != lang.JS || !ctx.Options.MungeIdentifiers {
		return toks, nil
	}
	a := newScopeAnalysis(toks)
	a.run()
	a.assignNames()
	a.rewrite()
	return toks, nil
}

type scope struct {
	parent   *scope
	children []*scope
	start    int // token index of the function keyword
	end      int // token index just past the body's closing brace
	declared []string
	declSet  map[string]bool
	unsafe   bool
	renames  map[string]string
}

func (s *scope) declare(name string) {
	if s.declSet == nil {
		s.declSet = make(map[string]bool)
	}
	if !s.declSet[name] {
		s.declSet[name] = true
		s.declared = append(s.declared, name)
	}
}

func (s *scope) markUnsafeChain() {
	for cur := s; cur != nil; cur = cur.parent {
		cur.unsafe = true
	}
}

type scopeAnalysis struct {
	toks   []token.Token
	root   *scope
	scopes []*scope // function scopes in open order
	vetoed map[string]bool
}

func newScopeAnalysis(toks []token.Token) *scopeAnalysis {
	return &scopeAnalysis{
		toks:   toks,
		root:   &scope{start: 0, end: len(toks)},
		vetoed: make(map[string]bool),
	}
}

// run builds the function scope tree and collects declarations.
func (a *scopeAnalysis) run() {
	cur := a.root
	// pending maps a brace-open token index to the scope it starts
	pending := make(map[int]*scope)
	var braceStack []*scope // scope owning each open brace, nil for plain blocks

	for i := 0; i < len(a.toks); i++ {
		t := a.toks[i]
		switch {
		case t.IsKeywordText("function"):
			s, bodyOpen := a.parseFunctionHeader(cur, i)
			if bodyOpen >= 0 {
				pending[bodyOpen] = s
			}
		case t.IsKeywordText("var"), t.IsKeywordText("let"), t.IsKeywordText("const"):
			a.parseDeclarators(cur, i)
		case t.IsKeywordText("catch"):
			a.parseCatchParam(cur, i)
		case t.IsKeywordText("with"), t.IsKeywordText("class"):
			cur.markUnsafeChain()
		case t.Kind == token.Ident && t.Text == "eval":
			cur.markUnsafeChain()
		case t.Kind == token.Operator && t.Text == "=>":
			cur.markUnsafeChain()
		case t.IsPunctText("{"):
			if s, ok := pending[i]; ok {
				delete(pending, i)
				s.parent = cur
				cur.children = append(cur.children, s)
				a.scopes = append(a.scopes, s)
				cur = s
				braceStack = append(braceStack, s)
			} else {
				braceStack = append(braceStack, nil)
			}
		case t.IsPunctText("}"):
			if len(braceStack) == 0 {
				continue
			}
			owner := braceStack[len(braceStack)-1]
			braceStack = braceStack[:len(braceStack)-1]
			if owner != nil {
				owner.end = i + 1
				cur = owner.parent
			}
		case t.Kind == token.Ident:
			a.checkShorthandVeto(i)
		}
	}
	// unterminated scopes extend to the end of the stream
	for _, s := range a.scopes {
		if s.end == 0 {
			s.end = len(a.toks)
		}
	}
}

// parseFunctionHeader reads "function [*] [name] ( params )" starting at the
// function keyword and returns the new scope plus the body brace index. The
// scope region starts at the keyword so that header occurrences (parameters,
// default value expressions) are renamed along with the body.
func (a *scopeAnalysis) parseFunctionHeader(parent *scope, kw int) (*scope, int) {
	s := &scope{start: kw}
	i := nextSignificant(a.toks, kw+1)
	if i >= 0 && a.toks[i].Kind == token.Operator && a.toks[i].Text == "*" {
		i = nextSignificant(a.toks, i+1)
	}
	if i >= 0 && a.toks[i].Kind == token.Ident {
		// declarations and named expressions alike bind in the parent
		parent.declare(a.toks[i].Text)
		i = nextSignificant(a.toks, i+1)
	}
	if i < 0 || !a.toks[i].IsPunctText("(") {
		return s, -1
	}

	depth := 1
	expectParam := true
	for i = nextSignificant(a.toks, i+1); i >= 0; i = nextSignificant(a.toks, i+1) {
		t := a.toks[i]
		switch {
		case t.IsPunctText("("):
			depth++
		case t.IsPunctText(")"):
			depth--
			if depth == 0 {
				body := nextSignificant(a.toks, i+1)
				if body >= 0 && a.toks[body].IsPunctText("{") {
					return s, body
				}
				return s, -1
			}
		case depth == 1 && t.IsPunctText(","):
			expectParam = true
		case depth == 1 && (t.IsPunctText("{") || t.IsPunctText("[")):
			// destructured parameter
			s.unsafe = true
			expectParam = false
		case depth == 1 && expectParam && t.Kind == token.Ident:
			s.declare(t.Text)
			expectParam = false
		case depth == 1 && t.Kind == token.Operator && t.Text == "...":
			// rest parameter, the following ident is still a binding
		case depth == 1 && t.Kind == token.Operator && t.Text == "=":
			// default value expression runs to the next top-level comma
			expectParam = false
		case t.Kind == token.Operator && t.Text == "=>":
			// arrow in a default value can shadow bindings we track
			s.unsafe = true
		}
	}
	return s, -1
}

// parseDeclarators reads "var a = …, b, c;" and records the bound names.
// Newlines still present at this point survived whitespace collapsing, so a
// top-level one ends the statement just like a semicolon would.
func (a *scopeAnalysis) parseDeclarators(s *scope, kw int) {
	depth := 0
	expectName := true
	for i := kw + 1; i < len(a.toks); i++ {
		t := a.toks[i]
		if t.Kind == token.Newline {
			if depth == 0 && !expectName {
				return
			}
			continue
		}
		if !t.IsSignificant() {
			continue
		}
		switch {
		case t.IsPunctText("(") || t.IsPunctText("[") || t.IsPunctText("{"):
			if depth == 0 && expectName {
				// destructuring declaration
				s.markUnsafeChain()
				return
			}
			depth++
		case t.IsPunctText(")") || t.IsPunctText("]") || t.IsPunctText("}"):
			if depth == 0 {
				return
			}
			depth--
		case depth == 0 && t.IsPunctText(";"):
			return
		case depth == 0 && t.IsPunctText(","):
			expectName = true
		case depth == 0 && expectName && t.Kind == token.Ident:
			s.declare(t.Text)
			expectName = false
		case depth == 0 && expectName && t.Kind == token.Keyword:
			// "for (var x of xs)" leaves of/in after the name; anything
			// else keyword-shaped here ends the declaration
			return
		}
	}
}

// parseCatchParam reads "catch (e)" and binds e in the enclosing function.
func (a *scopeAnalysis) parseCatchParam(s *scope, kw int) {
	open := nextSignificant(a.toks, kw+1)
	if open < 0 || !a.toks[open].IsPunctText("(") {
		return
	}
	name := nextSignificant(a.toks, open+1)
	if name < 0 {
		return
	}
	switch {
	case a.toks[name].Kind == token.Ident:
		s.declare(a.toks[name].Text)
	case a.toks[name].IsPunctText("{") || a.toks[name].IsPunctText("["):
		s.markUnsafeChain()
	}
}

// checkShorthandVeto bans names that appear in object shorthand position
// ({x} or {x, y}), where renaming the local would change the key.
func (a *scopeAnalysis) checkShorthandVeto(i int) {
	prev := prevSignificant(a.toks, i-1)
	next := nextSignificant(a.toks, i+1)
	if prev < 0 || next < 0 {
		return
	}
	pt, nt := a.toks[prev], a.toks[next]
	if (pt.IsPunctText("{") || pt.IsPunctText(",")) &&
		(nt.IsPunctText(",") || nt.IsPunctText("}")) {
		a.vetoed[a.toks[i].Text] = true
	}
}

// assignNames picks replacement names scope by scope, outermost first.
func (a *scopeAnalysis) assignNames() {
	for _, s := range a.scopes {
		if s.unsafe || len(s.declared) == 0 {
			continue
		}
		forbidden := a.forbiddenNames(s)
		s.renames = make(map[string]string, len(s.declared))
		gen := nameGen{}
		for _, name := range s.declared {
			if a.vetoed[name] {
				continue
			}
			next := gen.next(forbidden)
			if next == name {
				// already minimal; keep it but reserve the name
				s.renames[name] = name
				continue
			}
			s.renames[name] = next
		}
	}
}

// forbiddenNames collects everything a replacement name must not collide
// with inside the scope's region: identifiers that stay unrenamed, and names
// already assigned by enclosing scopes.
func (a *scopeAnalysis) forbiddenNames(s *scope) map[string]bool {
	forbidden := make(map[string]bool)
	for i := s.start; i < s.end && i < len(a.toks); i++ {
		if a.toks[i].Kind == token.Ident {
			forbidden[a.toks[i].Text] = true
		}
	}
	for cur := s.parent; cur != nil; cur = cur.parent {
		for _, target := range cur.renames {
			forbidden[target] = true
		}
	}
	// names this scope renames are free again, their occurrences disappear
	for _, name := range s.declared {
		if !a.vetoed[name] {
			delete(forbidden, name)
		}
	}
	return forbidden
}

// nameGen yields a, b, …, z, aa, ab, … skipping keywords and forbidden names.
type nameGen struct {
	n int
}

func (g *nameGen) next(forbidden map[string]bool) string {
	for {
		name := shortName(g.n)
		g.n++
		if token.LookupJSKeyword(name) || forbidden[name] {
			continue
		}
		forbidden[name] = true
		return name
	}
}

func shortName(n int) string {
	var buf [8]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('a' + n%26)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(buf[i:])
}

// rewrite applies the innermost rename visible at each identifier.
func (a *scopeAnalysis) rewrite() {
	owner := make([]*scope, len(a.toks))
	for i := range owner {
		owner[i] = a.root
	}
	for _, s := range a.scopes { // open order: parents before children
		for i := s.start; i < s.end && i < len(a.toks); i++ {
			owner[i] = s
		}
	}

	for i := range a.toks {
		t := &a.toks[i]
		if t.Kind != token.Ident {
			continue
		}
		if a.isPropertyPosition(i) {
			continue
		}
		for s := owner[i]; s != nil; s = s.parent {
			if s.declSet[t.Text] {
				if target, ok := s.renames[t.Text]; ok {
					t.Text = target
				}
				break
			}
		}
	}
}

// isPropertyPosition reports whether the identifier at i names a property
// (x.name, x?.name) or an object literal key ({name: …}).
func (a *scopeAnalysis) isPropertyPosition(i int) bool {
	prev := prevSignificant(a.toks, i-1)
	if prev >= 0 {
		pt := a.toks[prev]
		if pt.IsPunctText(".") || (pt.Kind == token.Operator && pt.Text == "?.") {
			return true
		}
		if pt.IsPunctText("{") || pt.IsPunctText(",") {
			next := nextSignificant(a.toks, i+1)
			if next >= 0 && a.toks[next].IsPunctText(":") {
				return true
			}
		}
	}
	return false
}
