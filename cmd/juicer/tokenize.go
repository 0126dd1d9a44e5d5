package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/step1profit/juicer/internal/diagfmt"
	"github.com/step1profit/juicer/internal/driver"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Tokenize a JS or CSS file",
	Long:  `Tokenize shows the raw token stream of a source file, before any rewriting`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("type", "", "force the input language (js|css) instead of guessing by extension")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	language := lang.Unknown
	if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
		language, err = lang.Parse(typeFlag)
		if err != nil {
			return err
		}
	} else {
		var ok bool
		language, ok = lang.FromPath(path)
		if !ok {
			return fmt.Errorf("cannot tell the language of %q from its extension, pass --type", path)
		}
	}

	fileSet := source.NewFileSet()
	result, err := driver.TokenizeFile(fileSet, path, language, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
