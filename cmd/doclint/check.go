package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/log"
	"go.jacobcolvin.com/doclint/source"
	"go.jacobcolvin.com/doclint/watch"
)

// registerWatchFlag binds --watch to watchFiles. Both the root command and
// check carry it, since the root runs check.
func registerWatchFlag(flags *pflag.FlagSet, watchFiles *bool) {
	flags.BoolVarP(watchFiles, "watch", "w", false, "keep running and re-check files when they change")
}

func newCheckCmd(cfg *doclint.Config, logCfg *log.Config, watchFiles *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [path ...]",
		Short: "Check documentation comments (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, cfg, logCfg, args, *watchFiles)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	registerWatchFlag(cmd.Flags(), watchFiles)

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	return cmd
}

// checker runs the engine over files and writes their findings.
type checker struct {
	runner *doclint.Runner
	logger *slog.Logger
	out    io.Writer
	format doclint.Format
}

// check writes the findings of paths and returns the number of findings and
// of unreadable files.
func (c *checker) check(ctx context.Context, paths []string) (int, int, error) {
	results, err := c.runner.Run(ctx, paths)
	if err != nil {
		return 0, 0, err
	}

	var (
		findings []doclint.Finding
		failed   int
	)

	for _, res := range results {
		if res.Err != nil {
			failed++

			continue
		}

		findings = append(findings, res.Findings...)
	}

	err = doclint.WriteFindings(c.out, c.format, findings)
	if err != nil {
		return 0, 0, err
	}

	return len(findings), failed, nil
}

func runCheck(cmd *cobra.Command, cfg *doclint.Config, logCfg *log.Config, args []string, watchFiles bool) error {
	logger, err := logCfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	engine, err := cfg.NewEngine(doclint.WithLogger(logger))
	if err != nil {
		return err
	}

	format, err := doclint.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	exts, err := cfg.ExtensionList(cmd.Flags().Changed(cfg.Flags.Extensions))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	paths, err := collectFiles(args, exts)
	if err != nil {
		return err
	}

	logger.Info("checking files",
		slog.Int("files", len(paths)),
		slog.Any("checks", engine.Checks()),
	)

	c := &checker{
		runner: doclint.NewRunner(engine, loadComments, cfg.Workers),
		logger: logger,
		out:    cmd.OutOrStdout(),
		format: format,
	}

	findings, failed, err := c.check(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if watchFiles {
		return c.watch(cmd.Context(), args, exts)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files could not be read", doclint.ErrReadInput, failed, len(paths))
	}

	if findings > 0 {
		return errFindings
	}

	return nil
}

// watch re-checks changed files below the directories in args until ctx is
// done.
func (c *checker) watch(ctx context.Context, args, exts []string) error {
	w, err := watch.New(exts, watch.WithLogger(c.logger))
	if err != nil {
		return err
	}

	defer w.Close() //nolint:errcheck // Nothing to do about a failed close.

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", doclint.ErrReadInput, err)
		}

		dir := arg
		if !info.IsDir() {
			dir = filepath.Dir(arg)
		}

		err = w.Add(dir)
		if err != nil {
			return err
		}
	}

	c.logger.Info("watching for changes", slog.Any("paths", args))

	return w.Run(ctx, func(ctx context.Context, paths []string) {
		_, _, err := c.check(ctx, paths)
		if err != nil && ctx.Err() == nil {
			c.logger.Error("check changed files", slog.Any("error", err))
		}
	})
}

// loadComments adapts [source.ReadFile] to [doclint.LoadFunc].
func loadComments(ctx context.Context, path string) ([]doclint.Comment, error) {
	f, err := source.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	comments := make([]doclint.Comment, 0, len(f.Comments))
	for _, c := range f.Comments {
		comments = append(comments, doclint.Comment{Comment: c.Comment, Declaration: c.Declaration})
	}

	return comments, nil
}

// collectFiles expands directories into the files below them that have one
// of exts. Explicitly named files are kept whatever their extension.
// Hidden directories are skipped.
func collectFiles(args, exts []string) ([]string, error) {
	var paths []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", doclint.ErrReadInput, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if slices.Contains(exts, filepath.Ext(path)) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", doclint.ErrReadInput, err)
		}
	}

	return paths, nil
}
