package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/diagfmt"
	"github.com/step1profit/juicer/internal/driver"
	"github.com/step1profit/juicer/internal/lang"
	"github.com/step1profit/juicer/internal/source"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <file|dir>",
	Short: "Minify a JS or CSS file, or every file under a directory",
	Long: `Minify rewrites JavaScript and CSS sources into their smallest
equivalent form. A single file is written to stdout unless -o is given; a
directory is processed in parallel and each app.js becomes app.min.js next to
it. Options come from the nearest juicer.toml and can be overridden by flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runMinify,
}

func init() {
	minifyCmd.Flags().StringP("output", "o", "", "output path for single-file mode (default stdout)")
	minifyCmd.Flags().String("type", "", "force the input language (js|css) instead of guessing by extension")
	minifyCmd.Flags().Int("line-break", -1, "insert a newline after the first safe break at or past this column (-1 disables)")
	minifyCmd.Flags().Bool("nomunge", false, "keep local identifier names as written")
	minifyCmd.Flags().Bool("merge-strings", false, "fold adjacent string literal concatenations into one literal")
	minifyCmd.Flags().String("charset", "", "input/output byte encoding (default utf-8)")
	minifyCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 = GOMAXPROCS)")
	minifyCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache in directory mode")
	minifyCmd.Flags().String("ui", "auto", "interactive progress in directory mode (auto|on|off)")
}

// resolveOptions layers explicit flags over the nearest manifest over the
// built-in defaults.
func resolveOptions(cmd *cobra.Command, startDir string) (config.Options, error) {
	opts, _, err := config.LoadOptions(startDir)
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("line-break") {
		opts.LineBreakColumn, _ = flags.GetInt("line-break")
	}
	if flags.Changed("nomunge") {
		nomunge, _ := flags.GetBool("nomunge")
		opts.MungeIdentifiers = !nomunge
	}
	if flags.Changed("merge-strings") {
		merge, _ := flags.GetBool("merge-strings")
		opts.PreserveStrings = !merge
	}
	if flags.Changed("charset") {
		charset, _ := flags.GetString("charset")
		if _, err := config.LookupCharset(charset); err != nil {
			return opts, err
		}
		opts.Charset = charset
	}
	return opts, nil
}

func runMinify(cmd *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}
	if info.IsDir() {
		return runMinifyDir(cmd, target)
	}
	return runMinifyFile(cmd, target)
}

func runMinifyFile(cmd *cobra.Command, path string) error {
	opts, err := resolveOptions(cmd, dirOf(path))
	if err != nil {
		return err
	}
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	forced := lang.Unknown
	if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
		forced, err = lang.Parse(typeFlag)
		if err != nil {
			return err
		}
	}

	res := driver.Minify(path, forced, opts, maxDiagnostics)
	printDiagnostics(cmd, []driver.Result{res}, opts)
	if res.Bag.HasErrors() {
		return fmt.Errorf("%s: minification failed", path)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" || output == "-" {
		fmt.Fprint(os.Stdout, res.Output)
		return nil
	}
	if err := driver.WriteOutput(output, res.Output); err != nil {
		return fmt.Errorf("failed to write %q: %w", output, err)
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(os.Stdout, "%s -> %s (%d bytes)\n", path, output, len(res.Output))
	}
	return nil
}

func runMinifyDir(cmd *cobra.Command, dir string) error {
	if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
		return fmt.Errorf("--type only applies to single files, directory mode detects by extension")
	}

	opts, err := resolveOptions(cmd, dir)
	if err != nil {
		return err
	}
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	jobs, _ := cmd.Flags().GetInt("jobs")

	var cache *driver.DiskCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err = driver.OpenDiskCache("juicer")
		if err != nil && !quiet {
			// работаем без кеша
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		}
	}

	mode, err := readUIMode(cmd.Flags().Lookup("ui").Value.String())
	if err != nil {
		return err
	}

	var results []driver.Result
	if shouldUseTUI(mode) && !quiet {
		results, err = runMinifyDirWithUI(cmd.Context(), dir, opts, maxDiagnostics, jobs, cache)
	} else {
		results, err = driver.MinifyDir(cmd.Context(), dir, opts, maxDiagnostics, jobs, cache, nil)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "nothing to minify")
		}
		return nil
	}

	printDiagnostics(cmd, results, opts)

	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() {
			failed++
			continue
		}
		out := driver.MinifiedPath(res.Path)
		if err := driver.WriteOutput(out, res.Output); err != nil {
			return fmt.Errorf("failed to write %q: %w", out, err)
		}
		if !quiet {
			note := ""
			if res.Cached {
				note = " (cached)"
			}
			fmt.Fprintf(os.Stdout, "%s -> %s%s\n", res.Path, out, note)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// printDiagnostics renders every non-empty bag to stderr. Each result was
// produced against its own single-file set, so re-reading the file under the
// same ID is enough to resolve spans.
func printDiagnostics(cmd *cobra.Command, results []driver.Result, opts config.Options) {
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
	for _, res := range results {
		if res.Bag == nil || res.Bag.Len() == 0 {
			continue
		}
		fs := source.NewFileSet()
		if src, err := os.ReadFile(res.Path); err == nil {
			if decoded, err := config.DecodeBytes(opts.Charset, src); err == nil {
				src = decoded
			}
			fs.AddBytes(res.Path, src)
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, fs, prettyOpts)
	}
}

func dirOf(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
