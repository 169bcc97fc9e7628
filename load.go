package gosbml

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gosbml/gosbml/internal/reader"
	"github.com/gosbml/gosbml/internal/types"
)

// Result is one document of a batch read.
type Result struct {
	Path     string
	Document *Document
}

// ReadAll reads every file listed by src in parallel and returns the
// documents in listing order. Files that cannot be opened produce a
// document with a fatal file-not-found message, like ReadFile. Only a
// listing failure or cancellation of ctx returns an error.
func ReadAll(ctx context.Context, src Source, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts)
	logger := types.Logger{L: types.Component(cfg.logger, "batch")}

	files, err := src.ListFiles()
	if err != nil {
		return nil, err
	}
	logger.Log(slog.LevelInfo, "parallel reading", slog.Int("files", len(files)))

	results := make([]Result, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, path := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}

			ropts := cfg.readOptions()
			f, err := src.Open(path)
			if err != nil {
				results[i] = Result{Path: path, Document: reader.OpenFailed(path, err, ropts)}
				return
			}
			defer func() { _ = f.Close() }()
			results[i] = Result{Path: path, Document: reader.Read(f, ropts)}
			if logger.TraceEnabled() {
				logger.Trace("file read", slog.String("path", path))
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Log(slog.LevelInfo, "parallel reading complete", slog.Int("documents", len(results)))
	return results, nil
}
