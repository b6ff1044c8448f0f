package doclint

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// LoadFunc reads a source file and returns its comments in source order.
type LoadFunc func(ctx context.Context, path string) ([]Comment, error)

// FileResult holds the outcome of analyzing one file.
type FileResult struct {
	// Err is set when the file could not be loaded.
	Err      error
	Path     string
	Findings []Finding
}

// Runner analyzes many files concurrently. Each file gets its own [File]
// context, so workers share nothing but the read-only [Engine].
type Runner struct {
	engine  *Engine
	load    LoadFunc
	workers int
}

// NewRunner creates a [Runner]. A workers value below one runs files one at
// a time.
func NewRunner(engine *Engine, load LoadFunc, workers int) *Runner {
	return &Runner{engine: engine, load: load, workers: max(workers, 1)}
}

// Run analyzes paths and returns one result per path, in input order.
// A file that cannot be loaded does not stop the run; its result carries
// the error. Run only fails when ctx is canceled.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = r.runFile(gctx, path)

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("run: %w", context.Cause(ctx))
	}

	return results, nil
}

func (r *Runner) runFile(ctx context.Context, path string) FileResult {
	comments, err := r.load(ctx, path)
	if err != nil {
		r.engine.logger.Warn("skipping file",
			slog.String("file", path),
			slog.Any("error", err),
		)

		return FileResult{Path: path, Err: fmt.Errorf("%w: %w", ErrReadInput, err)}
	}

	f := r.engine.NewFile(path)

	for _, c := range comments {
		f.Process(c)
	}

	return FileResult{Path: path, Findings: f.Finish()}
}
