package dev

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore patterns to skip. Bare names match any path segment,
	// patterns with wildcards match base names.
	Ignore []string

	// Debounce is the quiet period after the last event before the
	// callback fires.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	".generated",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher monitors pages roots for changes via fsnotify, coalescing
// bursts of events into a single callback.
type Watcher struct {
	config   WatcherConfig
	log      *zap.Logger
	onChange func(paths []string)
}

// NewWatcher creates a file watcher.
func NewWatcher(config WatcherConfig, log *zap.Logger) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{config: config, log: log}
}

// OnChange sets the callback invoked with the batch of changed paths.
func (w *Watcher) OnChange(fn func(paths []string)) {
	w.onChange = fn
}

// Start watches until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, root := range w.config.Paths {
		if err := w.addRecursive(fsw, root); err != nil {
			return err
		}
	}

	var (
		pending []string
		timer   = time.NewTimer(w.config.Debounce)
	)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.shouldIgnore(event.Name) {
				continue
			}
			// New directories must be added to the watch list so
			// files created inside them are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(fsw, event.Name)
				}
			}
			w.log.Debug("fs event",
				zap.String("op", event.Op.String()),
				zap.String("path", event.Name))
			pending = append(pending, event.Name)
			timer.Reset(w.config.Debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			if len(pending) > 0 && w.onChange != nil {
				w.onChange(pending)
			}
			pending = nil
		}
	}
}

// addRecursive registers dir and every non-ignored subdirectory.
func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.shouldIgnore(path) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}

// shouldIgnore checks a path against the ignore patterns.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}
		if pathHasSegment(normalized, pattern) {
			return true
		}
	}
	return false
}

func pathHasSegment(path, segment string) bool {
	for _, part := range strings.Split(path, "/") {
		if part == segment {
			return true
		}
	}
	return false
}
