package driver

import (
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/lexer"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

// TokenizeResult carries the raw token stream of one file, for inspection.
type TokenizeResult struct {
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizeFile lexes one file into the shared FileSet without rewriting it.
func TokenizeFile(fileSet *source.FileSet, path string, language lang.Language, maxDiagnostics int) (TokenizeResult, error) {
	fileID, err := fileSet.Load(path)
	if err != nil {
		return TokenizeResult{}, err
	}
	file := fileSet.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(file, lexer.Options{Language: language, Reporter: &diag.BagReporter{Bag: bag}})
	return TokenizeResult{FileID: fileID, Tokens: toks, Bag: bag}, nil
}

// TokenizeSource lexes an in-memory buffer, registering it as a virtual file.
func TokenizeSource(fileSet *source.FileSet, name string, src []byte, language lang.Language, maxDiagnostics int) TokenizeResult {
	fileID := fileSet.AddVirtual(name, src)
	file := fileSet.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(file, lexer.Options{Language: language, Reporter: &diag.BagReporter{Bag: bag}})
	return TokenizeResult{FileID: fileID, Tokens: toks, Bag: bag}
}
