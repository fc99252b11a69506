// Package driver orchestrates multi-file work on top of the source and diag
// layers: collecting files, scanning them in parallel, and handing the
// resulting diagnostics to a formatter.
package driver

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"caret/internal/diag"
	"caret/internal/source"
)

// SearchResult holds the findings for a single file.
type SearchResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
}

// SearchOptions bounds a search run.
type SearchOptions struct {
	// MaxDiagnostics caps each file's bag.
	MaxDiagnostics int
	// Jobs limits worker goroutines; <= 0 means GOMAXPROCS.
	Jobs int
}

// CollectFiles expands the given paths: regular files are kept as-is,
// directories are walked recursively. The result is sorted for
// deterministic processing order.
func CollectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// SearchFiles loads every file and scans it for literal occurrences of
// pattern, producing one diagnostic per match. Files are scanned in
// parallel; result slots are indexed per file, so no locking is needed.
// Files that fail to load contribute a location-less error diagnostic
// instead of aborting the run.
func SearchFiles(ctx context.Context, paths []string, pattern string, opts SearchOptions) (*source.FileSet, []SearchResult, error) {
	if pattern == "" {
		return nil, nil, fmt.Errorf("empty search pattern")
	}

	files, err := CollectFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSet(), nil, nil
	}

	// Preload sequentially: FileSet is not safe for concurrent mutation.
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]SearchResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.New(diag.SevError, source.Span{},
					fmt.Sprintf("failed to load %s: %v", path, loadErr)))
				results[i] = SearchResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			scanFile(bag, file, pattern)
			bag.Sort()

			results[i] = SearchResult{Path: path, FileID: fileID, Bag: bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// scanFile reports one diagnostic per non-overlapping literal match.
func scanFile(bag *diag.Bag, file *source.File, pattern string) {
	needle := []byte(pattern)
	off := 0
	for {
		i := bytes.Index(file.Content[off:], needle)
		if i < 0 {
			return
		}
		start32, err := safecast.Conv[uint32](off + i)
		if err != nil {
			panic(fmt.Errorf("match offset overflow: %w", err))
		}
		end32, err := safecast.Conv[uint32](off + i + len(needle))
		if err != nil {
			panic(fmt.Errorf("match offset overflow: %w", err))
		}
		bag.Add(diag.New(diag.SevInfo,
			source.Span{File: file.ID, Start: start32, End: end32},
			fmt.Sprintf("match for %q", pattern)))
		off += i + len(needle)
	}
}
