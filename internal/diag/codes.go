package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedRegex        Code = 1005

	// Rewrite rules
	RuleInfo     Code = 2000
	RuleConflict Code = 2001

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Configuration
	CfgInfo                Code = 5000
	CfgUnsupportedLanguage Code = 5001
	CfgUnknownCharset      Code = 5002
	CfgBadManifest         Code = 5003
	CfgBadLineBreak        Code = 5004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexUnterminatedRegex:        "Unterminated regular expression",
	RuleInfo:                    "Rewrite rule information",
	RuleConflict:                "Conflicting rewrite edits",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	CfgInfo:                     "Configuration information",
	CfgUnsupportedLanguage:      "Unsupported language",
	CfgUnknownCharset:           "Unknown charset",
	CfgBadManifest:              "Invalid juicer.toml",
	CfgBadLineBreak:             "Invalid line break column",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RUL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
