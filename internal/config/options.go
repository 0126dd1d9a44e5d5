package config

import (
	"crypto/sha256"
	"fmt"
)

// Options controls how a source file is minified.
type Options struct {
	// MungeIdentifiers renames function-local identifiers to short names.
	MungeIdentifiers bool
	// PreserveStrings keeps string literals byte-identical to the input.
	PreserveStrings bool
	// LineBreakColumn inserts a line break after the first safe boundary at or
	// past this column. Negative disables breaking; 0 breaks at every boundary.
	LineBreakColumn int
	// Charset names the input/output byte encoding ("utf-8" when empty).
	Charset string
}

// Default returns the options used when no manifest or flags say otherwise.
// String literals are preserved unless merging is asked for explicitly.
func Default() Options {
	return Options{
		MungeIdentifiers: true,
		PreserveStrings:  true,
		LineBreakColumn:  -1,
		Charset:          "utf-8",
	}
}

// Digest - фиксированный 256 битный хеш опций (для ключей кеша).
type Digest [32]byte

// Digest hashes every field that can change the output. Two option sets with
// equal digests produce byte-identical results for the same input.
func (o Options) Digest() Digest {
	h := sha256.New()
	fmt.Fprintf(h, "munge=%t;preserve=%t;linebreak=%d;charset=%s",
		o.MungeIdentifiers, o.PreserveStrings, o.LineBreakColumn, o.Charset)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
