package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/step1profit/juicer/internal/config"
	"github.com/step1profit/juicer/internal/diag"
	"github.com/step1profit/juicer/internal/lang"
)

// Stage tracks where a file is in the minification pipeline, for progress UIs.
type Stage uint8

const (
	StageQueued Stage = iota
	StageMinifying
	StageDone
	StageCached
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageMinifying:
		return "minifying"
	case StageDone:
		return "done"
	case StageCached:
		return "cached"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Progress is one pipeline event. Callbacks may fire from worker goroutines.
type Progress struct {
	Path  string
	Stage Stage
	Index int
	Total int
}

// ProgressFunc observes per-file progress. Nil is allowed.
type ProgressFunc func(Progress)

// ListSourceFiles returns the sorted minifiable files under dir, skipping
// already-minified ones.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isMinifiedName(path) {
			return nil
		}
		if _, ok := lang.FromPath(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

func isMinifiedName(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	return filepath.Ext(stem) == ".min"
}

// MinifiedPath derives the output path: app.js becomes app.min.js.
func MinifiedPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".min" + ext
}

// MinifyDir minifies every JS and CSS file under dir in parallel. Results
// come back in the same deterministic order as the file listing; failures are
// carried in each Result's Bag rather than aborting the batch.
func MinifyDir(ctx context.Context, dir string, opts config.Options, maxDiagnostics, jobs int, cache *DiskCache, progress ProgressFunc) ([]Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	notify := func(p Progress) {
		if progress != nil {
			progress(p)
		}
	}
	for i, path := range files {
		notify(Progress{Path: path, Stage: StageQueued, Index: i, Total: len(files)})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				notify(Progress{Path: path, Stage: StageMinifying, Index: i, Total: len(files)})
				results[i] = minifyOne(path, opts, maxDiagnostics, cache)

				stage := StageDone
				switch {
				case results[i].Bag.HasErrors():
					stage = StageFailed
				case results[i].Cached:
					stage = StageCached
				}
				notify(Progress{Path: path, Stage: stage, Index: i, Total: len(files)})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func minifyOne(path string, opts config.Options, maxDiagnostics int, cache *DiskCache) Result {
	language, ok := lang.FromPath(path)
	if !ok {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.CfgUnsupportedLanguage,
			Message:  "cannot tell the language of " + path + " from its extension",
		})
		return Result{Path: path, Bag: bag}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		bag := diag.NewBag(maxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return Result{Path: path, Bag: bag}
	}

	key := CacheKey(src, language, opts)
	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return Result{Path: path, Output: payload.Output, Cached: true, Bag: diag.NewBag(maxDiagnostics)}
	}

	out, bag, err := MinifySource(path, src, language, opts, maxDiagnostics)
	res := Result{Path: path, Output: out, Bag: bag}
	if err == nil {
		// cache write failures are invisible, the next run just recomputes
		_ = cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Output: out})
	}
	return res
}
