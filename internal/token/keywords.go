package token

// jsKeywords are the ECMAScript reserved words the lexer classifies as
// Keyword. Future reserved words are included so the munger never
// produces them as short names.
var jsKeywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "function": true, "if": true, "implements": true,
	"import": true, "in": true, "instanceof": true, "interface": true,
	"let": true, "new": true, "null": true, "of": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "undefined": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true,
}

// LookupJSKeyword reports whether ident is a JS reserved word.
// Keywords are case-sensitive; only the lowercase form matches.
func LookupJSKeyword(ident string) bool {
	return jsKeywords[ident]
}
