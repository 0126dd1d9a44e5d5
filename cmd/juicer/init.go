package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/step1profit/juicer/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a juicer.toml with the default settings",
	Long: `Init writes a juicer.toml manifest spelling out the default
minification settings. If [path] is omitted, the current directory is used; a
non-existing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else if filepath.IsAbs(args[0]) {
		target = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, args[0])
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	path, err := config.WriteDefaultManifest(target)
	if err != nil {
		return err
	}

	rel := path
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, path); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", rel)
	return nil
}
