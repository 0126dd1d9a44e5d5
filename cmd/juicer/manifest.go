package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/step1profit/juicer/internal/config"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest [dir]",
	Short: "Show the effective minification options",
	Long: `Manifest resolves the options a minify run would use from the given
directory: the built-in defaults overlaid with the nearest juicer.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runManifest,
}

func runManifest(_ *cobra.Command, args []string) error {
	startDir := "."
	if len(args) > 0 && args[0] != "" {
		startDir = args[0]
	}

	opts, found, err := config.LoadOptions(startDir)
	if err != nil {
		return err
	}

	if found {
		path, _, _ := config.FindManifest(startDir)
		fmt.Fprintf(os.Stdout, "manifest: %s\n", path)
	} else {
		fmt.Fprintf(os.Stdout, "manifest: none (built-in defaults)\n")
	}
	fmt.Fprintf(os.Stdout, "  munge:            %t\n", opts.MungeIdentifiers)
	fmt.Fprintf(os.Stdout, "  preserve-strings: %t\n", opts.PreserveStrings)
	fmt.Fprintf(os.Stdout, "  line-break:       %d\n", opts.LineBreakColumn)
	fmt.Fprintf(os.Stdout, "  charset:          %s\n", opts.Charset)
	return nil
}
