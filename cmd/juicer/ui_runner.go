package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/driver"
	"github.com/step1profit/juicer/internal/ui"
)

type minifyOutcome struct {
	results []driver.Result
	err     error
}

// runMinifyDirWithUI drives MinifyDir behind an interactive progress view.
// Worker events flow through a channel into the Bubble Tea model; the batch
// outcome is collected once the channel closes.
func runMinifyDirWithUI(ctx context.Context, dir string, opts config.Options, maxDiagnostics, jobs int, cache *driver.DiskCache) ([]driver.Result, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	events := make(chan driver.Progress, 256)
	outcomeCh := make(chan minifyOutcome, 1)

	go func() {
		results, err := driver.MinifyDir(ctx, dir, opts, maxDiagnostics, jobs, cache, func(p driver.Progress) {
			events <- p
		})
		outcomeCh <- minifyOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("minifying "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
