// Package lang identifies the input languages the minifier understands.
package lang

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language selects the lexical grammar and rule behavior for one input.
type Language uint8

const (
	// Unknown means the language was not (or could not be) detected.
	Unknown Language = iota
	// JS is ECMAScript source.
	JS
	// CSS is a stylesheet.
	CSS
)

func (l Language) String() string {
	switch l {
	case JS:
		return "js"
	case CSS:
		return "css"
	}
	return "unknown"
}

// FromPath detects the language from a file suffix.
func FromPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return JS, true
	case ".css":
		return CSS, true
	}
	return Unknown, false
}

// Parse resolves an explicit language tag.
func Parse(tag string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "js", "javascript":
		return JS, nil
	case "css":
		return CSS, nil
	}
	return Unknown, fmt.Errorf("unsupported language %q (expected js or css)", tag)
}
