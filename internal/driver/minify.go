package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/emit"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/lexer"
	"github.com/step1profit/juicer/internal/rules"
	"github.com/step1profit/juicer/internal/source"
	"github.com/step1profit/juicer/internal/token"
)

// ErrMinifyFailed signals that diagnostics were produced and no output was
// written. Details live in the Bag that accompanies the error.
var ErrMinifyFailed = errors.New("minification failed")

// Result holds the outcome of minifying one file or buffer.
type Result struct {
	Path   string
	FileID source.FileID
	Output string
	Cached bool
	Bag    *diag.Bag
}

// MinifySource minifies an in-memory buffer. The name only labels
// diagnostics. Input bytes are decoded from opts.Charset and the output is
// encoded back to it; on any error the output is empty, never partial.
func MinifySource(name string, src []byte, language lang.Language, opts config.Options, maxDiagnostics int) (string, *diag.Bag, error) {
	bag := diag.NewBag(maxDiagnostics)

	decoded, err := config.DecodeBytes(opts.Charset, src)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.CfgUnknownCharset,
			Message:  err.Error(),
		})
		return "", bag, fmt.Errorf("%w: %s", ErrMinifyFailed, name)
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddBytes(name, decoded))

	toks := lexer.Tokenize(file, lexer.Options{Language: language, Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		return "", bag, fmt.Errorf("%w: %s", ErrMinifyFailed, name)
	}
	if n := len(toks); n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}

	ctx := &rules.Context{Language: language, Options: opts, Reporter: &diag.BagReporter{Bag: bag}}
	rewritten, err := rules.Apply(rules.Default(), toks, ctx)
	if err != nil {
		return "", bag, fmt.Errorf("%w: %s: %v", ErrMinifyFailed, name, err)
	}

	out := emit.New(language, opts).Emit(rewritten)

	encoded, err := config.EncodeBytes(opts.Charset, []byte(out))
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.CfgUnknownCharset,
			Message:  err.Error(),
		})
		return "", bag, fmt.Errorf("%w: %s", ErrMinifyFailed, name)
	}
	return string(encoded), bag, nil
}

// Minify reads, minifies and returns one file. The language comes from the
// path extension unless forced is a concrete language.
func Minify(path string, forced lang.Language, opts config.Options, maxDiagnostics int) Result {
	bag := diag.NewBag(maxDiagnostics)
	res := Result{Path: path, Bag: bag}

	language := forced
	if language == lang.Unknown {
		var ok bool
		language, ok = lang.FromPath(path)
		if !ok {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.CfgUnsupportedLanguage,
				Message:  fmt.Sprintf("cannot tell the language of %q from its extension", path),
			})
			return res
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return res
	}

	out, fileBag, _ := MinifySource(path, src, language, opts, maxDiagnostics)
	res.Bag = fileBag
	res.Output = out
	return res
}

// WriteOutput writes minified output atomically next to its final path.
func WriteOutput(path string, output string) error {
	f, err := os.CreateTemp(filepath.Dir(path), "juicer-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.WriteString(output); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
