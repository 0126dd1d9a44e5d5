package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	codeColor = color.New(color.Faint)
)

// Pretty renders diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~
//
// followed by its notes. The caller is expected to bag.Sort() first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, &d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityLabel(d.Severity, opts.Color)
	code := d.Code.ID()
	if opts.Color {
		code = codeColor.Sprint(code)
	}

	if d.Primary == (source.Span{}) {
		fmt.Fprintf(w, "juicer: %s %s: %s\n", sev, code, d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, sev, code, d.Message)
	writeContext(w, file, d.Primary, start)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeNote(w, &note, fs, opts)
		}
	}
}

func writeNote(w io.Writer, note *diag.Note, fs *source.FileSet, opts PrettyOpts) {
	if note.Span == (source.Span{}) {
		fmt.Fprintf(w, "  note: %s\n", note.Msg)
		return
	}
	start, _ := fs.Resolve(note.Span)
	file := fs.Get(note.Span.File)
	fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
		displayPath(file.Path, opts.PathMode), start.Line, start.Col, note.Msg)
}

// writeContext prints the offending line with a caret underline.
func writeContext(w io.Writer, file *source.File, span source.Span, start source.LineCol) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	width := int(span.End - span.Start)
	// clamp multi-line spans to the first line
	remaining := len(line) - int(start.Col-1)
	if width > remaining {
		width = remaining
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", int(start.Col-1)), strings.Repeat("~", width-1))
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil {
				return rel
			}
		}
	}
	return path
}
