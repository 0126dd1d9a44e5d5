package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Keyword represents a reserved word of the language.
	Keyword
	// String represents a string literal (quotes included in Text).
	String
	// Number represents a numeric literal.
	Number
	// Regex represents a JS regular expression literal, flags included.
	Regex
	// Operator represents an operator such as + or &&.
	Operator
	// Punct represents structural punctuation: braces, parens, separators.
	Punct

	// Comment represents a line or block comment, delimiters included.
	Comment
	// Whitespace represents a run of spaces and tabs.
	Whitespace
	// Newline represents a run of line feeds.
	Newline
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case String:
		return "String"
	case Number:
		return "Number"
	case Regex:
		return "Regex"
	case Operator:
		return "Operator"
	case Punct:
		return "Punct"
	case Comment:
		return "Comment"
	case Whitespace:
		return "Whitespace"
	case Newline:
		return "Newline"
	}
	return "Unknown"
}
