// Package watch reports changed source files below a set of directories.
//
// Events are collected until no new event arrives for the debounce window,
// then delivered as one sorted, deduplicated batch. Directories created
// while watching are added; hidden directories are never watched.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default quiet period before a batch is delivered.
const DefaultDebounce = 200 * time.Millisecond

// ErrWatch wraps failures to set up watches.
var ErrWatch = errors.New("watch")

// HandlerFunc receives a batch of changed files.
type HandlerFunc func(ctx context.Context, paths []string)

// Option configures a [Watcher].
type Option func(*Watcher)

// WithDebounce sets the quiet period before a batch is delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// Watcher watches directory trees for files with given extensions.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	exts     []string
	debounce time.Duration
}

// New creates a [Watcher] for files ending in one of exts.
func New(exts []string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}

	w := &Watcher{
		fsw:      fsw,
		exts:     exts,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Add watches root and every non-hidden directory below it.
func (w *Watcher) Add(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		return w.fsw.Add(path)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatch, root, err)
	}

	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers batches of changed files to handle until ctx is done. It
// returns nil when ctx ends the run.
func (w *Watcher) Run(ctx context.Context, handle HandlerFunc) error {
	var (
		pending = map[string]bool{}
		timer   *time.Timer
		fire    <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if !w.record(ev, pending) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", slog.Any("error", err))

		case <-fire:
			timer, fire = nil, nil

			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}

			clear(pending)
			slices.Sort(paths)
			handle(ctx, paths)
		}
	}
}

// record adds the file of ev to pending and reports whether it did.
// New directories are watched instead.
func (w *Watcher) record(ev fsnotify.Event, pending map[string]bool) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}

	info, err := os.Stat(ev.Name)
	if err != nil {
		return false
	}

	if info.IsDir() {
		if ev.Has(fsnotify.Create) && !strings.HasPrefix(info.Name(), ".") {
			err := w.Add(ev.Name)
			if err != nil {
				w.logger.Warn("watch directory", slog.String("dir", ev.Name), slog.Any("error", err))
			}
		}

		return false
	}

	if !slices.Contains(w.exts, filepath.Ext(ev.Name)) {
		return false
	}

	pending[ev.Name] = true

	return true
}
