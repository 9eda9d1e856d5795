// Package watch rebuilds a specification whenever one of its inputs changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/config"
	"github.com/yaklabco/gospec/pkg/fsutil"
)

// ErrNothingToWatch is returned when the first build fails before naming any
// input file.
var ErrNothingToWatch = errors.New("nothing to watch")

// RebuildFunc builds the document and returns the files it was built from.
// On failure it may still return the files discovered so far.
type RebuildFunc func(ctx context.Context) ([]string, error)

// Options controls watch mode.
type Options struct {
	// Debounce is the quiet period after the last event before rebuilding.
	// Zero means config.DefaultDebounce.
	Debounce time.Duration

	// OnRebuild, if set, is called after every rebuild attempt.
	OnRebuild func(files []string, err error)
}

func (o Options) debounce() time.Duration {
	if o.Debounce <= 0 {
		return config.DefaultDebounce
	}
	return o.Debounce
}

// Run builds once, then rebuilds after changes until ctx is cancelled.
//
// Directories holding the input files are watched rather than the files
// themselves, so editors that save by renaming over the original keep
// triggering rebuilds. A failed rebuild keeps the previous watch set and
// adds any newly reported file.
func Run(ctx context.Context, opts Options, rebuild RebuildFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	set := newFileSet(watcher)
	logger := logging.FromContext(ctx)

	if err := set.rebuild(ctx, rebuild, opts.OnRebuild); err != nil && set.len() == 0 {
		return fmt.Errorf("%w: %w", ErrNothingToWatch, err)
	}
	logger.Info("watching for changes", logging.FieldFiles, set.len())

	timer := time.NewTimer(opts.debounce())
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !set.relevant(event) {
				continue
			}
			logger.Debug("file event",
				logging.FieldPath, event.Name,
				logging.FieldOp, event.Op.String(),
			)
			timer.Reset(opts.debounce())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.FieldError, err)

		case <-timer.C:
			if !set.changed(ctx) {
				logger.Debug("inputs unchanged, skipping rebuild")
				continue
			}
			_ = set.rebuild(ctx, rebuild, opts.OnRebuild)
		}
	}
}

// fileSet tracks the watched input files and the directories holding them.
type fileSet struct {
	watcher *fsnotify.Watcher

	// files maps each input to its state after the last rebuild.
	// A nil snapshot means the file could not be read.
	files map[string]*fsutil.Snapshot

	// dirs counts watched files per directory.
	dirs map[string]int
}

func newFileSet(watcher *fsnotify.Watcher) *fileSet {
	return &fileSet{
		watcher: watcher,
		files:   make(map[string]*fsutil.Snapshot),
		dirs:    make(map[string]int),
	}
}

func (s *fileSet) len() int {
	return len(s.files)
}

// rebuild runs fn and updates the watch set from its result.
//
// Known inputs are snapshotted before fn runs, so a save that lands during
// the build still compares as changed afterwards.
func (s *fileSet) rebuild(ctx context.Context, fn RebuildFunc, notify func([]string, error)) error {
	logger := logging.FromContext(ctx)

	before := make(map[string]*fsutil.Snapshot, len(s.files))
	for file := range s.files {
		before[file] = snapshot(ctx, file)
	}

	start := time.Now()
	files, err := fn(ctx)
	if notify != nil {
		notify(files, err)
	}

	if err != nil {
		logger.Error("build failed", logging.FieldError, err)
		s.update(ctx, files, before, false)
		return err
	}

	logger.Info("rebuilt specification", logging.FieldDuration, time.Since(start))
	s.update(ctx, files, before, true)
	return nil
}

// update adds files to the set and records their pre-build snapshots. Files
// first seen in this build get a nil snapshot and force the next check to
// rebuild. With prune, files not listed are dropped.
func (s *fileSet) update(ctx context.Context, files []string, before map[string]*fsutil.Snapshot, prune bool) {
	logger := logging.FromContext(ctx)

	next := make(map[string]bool, len(files))
	for _, file := range files {
		next[filepath.Clean(file)] = true
	}

	if prune {
		for file := range s.files {
			if !next[file] {
				s.remove(file)
				logger.Debug("stopped watching", logging.FieldPath, file)
			}
		}
	}

	for file := range next {
		if _, ok := s.files[file]; !ok {
			if err := s.add(file); err != nil {
				logger.Warn("cannot watch file", logging.FieldPath, file, logging.FieldError, err)
				continue
			}
			logger.Debug("watching", logging.FieldPath, file)
		}
		s.files[file] = before[file]
	}
}

func (s *fileSet) add(file string) error {
	dir := filepath.Dir(file)
	if s.dirs[dir] == 0 {
		if err := s.watcher.Add(dir); err != nil {
			return err
		}
	}
	s.dirs[dir]++
	s.files[file] = nil
	return nil
}

func (s *fileSet) remove(file string) {
	delete(s.files, file)

	dir := filepath.Dir(file)
	s.dirs[dir]--
	if s.dirs[dir] <= 0 {
		delete(s.dirs, dir)
		_ = s.watcher.Remove(dir)
	}
}

// relevant reports whether event touches a watched file.
func (s *fileSet) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	_, ok := s.files[filepath.Clean(event.Name)]
	return ok
}

// changed reports whether any watched file differs from its snapshot.
func (s *fileSet) changed(ctx context.Context) bool {
	for file, snap := range s.files {
		if snap == nil {
			return true
		}
		changed, err := fsutil.Changed(ctx, snap)
		if err != nil || changed {
			logging.FromContext(ctx).Debug("input changed", logging.FieldPath, file)
			return true
		}
	}
	return false
}

func snapshot(ctx context.Context, file string) *fsutil.Snapshot {
	_, snap, err := fsutil.ReadFile(ctx, file)
	if err != nil {
		return nil
	}
	return snap
}
