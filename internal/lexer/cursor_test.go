package lexer

import (
	"testing"

	"github.com/step1profit/juicer/internal/source"
)

func makeCursor(t *testing.T, content string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cursor.js", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorBasics(t *testing.T) {
	c := makeCursor(t, "ab")

	if c.EOF() {
		t.Fatal("fresh cursor at EOF")
	}
	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek = %q", got)
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if got := c.Bump(); got != 'a' {
		t.Errorf("Bump = %q", got)
	}
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 near EOF should fail")
	}
	if got := c.Bump(); got != 'b' {
		t.Errorf("Bump = %q", got)
	}
	if !c.EOF() {
		t.Error("expected EOF")
	}
	if got := c.Peek(); got != 0 {
		t.Errorf("Peek at EOF = %q", got)
	}
	if got := c.Bump(); got != 0 {
		t.Errorf("Bump at EOF = %q", got)
	}
}

func TestCursorPeekAt(t *testing.T) {
	c := makeCursor(t, "xyz")
	if got := c.PeekAt(0); got != 'x' {
		t.Errorf("PeekAt(0) = %q", got)
	}
	if got := c.PeekAt(2); got != 'z' {
		t.Errorf("PeekAt(2) = %q", got)
	}
	if got := c.PeekAt(3); got != 0 {
		t.Errorf("PeekAt(3) = %q", got)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := makeCursor(t, "hello")
	m := c.Mark()
	c.Bump()
	c.Bump()

	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v", sp)
	}

	c.Reset(m)
	if got := c.Peek(); got != 'h' {
		t.Errorf("after Reset Peek = %q", got)
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor(t, "=>")
	if !c.Eat('=') {
		t.Error("Eat('=') failed")
	}
	if c.Eat('=') {
		t.Error("Eat should not match '>'")
	}
	if !c.Eat('>') {
		t.Error("Eat('>') failed")
	}
	if c.Eat('>') {
		t.Error("Eat at EOF should fail")
	}
}
