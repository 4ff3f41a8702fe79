package pipeline

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/benchsift/config"
	"github.com/teranos/benchsift/errors"
)

// Watcher re-runs the extraction pipeline whenever a configured dataset
// root changes. Incremental benchmarking leaves partial trees behind, so
// rapid events are debounced into one re-run.
type Watcher struct {
	runner   *Runner
	datasets []config.DatasetConfig
	watcher  *fsnotify.Watcher
	logger   *zap.SugaredLogger

	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration

	done chan struct{}
}

// NewWatcher creates a watcher over every configured dataset root
func NewWatcher(runner *Runner, datasets []config.DatasetConfig, debounce time.Duration, logger *zap.SugaredLogger) (*Watcher, error) {
	if len(datasets) == 0 {
		return nil, errors.ErrNoDatasets
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		runner:         runner,
		datasets:       datasets,
		watcher:        fsw,
		logger:         logger.Named("watch"),
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}, nil
}

// Start runs the pipeline once, registers the dataset trees with the
// watcher, and begins reacting to changes.
func (w *Watcher) Start() error {
	if _, err := w.runner.Run(w.datasets); err != nil {
		return err
	}
	w.addDatasetTrees()

	go w.watchLoop()
	return nil
}

// Stop stops watching for dataset changes
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

// addDatasetTrees registers every directory under every dataset root.
// fsnotify does not watch recursively, and the harness creates new
// directories per benchmark, so trees are re-registered after each run.
// Unreadable or vanished directories are skipped, same as the locator.
func (w *Watcher) addDatasetTrees() {
	for _, ds := range w.datasets {
		filepath.WalkDir(ds.Root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if err := w.watcher.Add(path); err != nil {
				w.logger.Debugw("could not watch directory",
					"path", path,
					"error", err)
			}
			return nil
		})
	}
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.isOwnArtifact(event.Name) {
				continue
			}
			w.logger.Debugw("dataset change detected",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleRun()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("watcher error",
				"error", err)
		}
	}
}

// scheduleRun debounces rapid file changes and triggers one re-run
func (w *Watcher) scheduleRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.logger.Infow("dataset changed, re-running extraction")
		if _, err := w.runner.Run(w.datasets); err != nil {
			w.logger.Errorw("re-run failed",
				"error", err)
		}
		// New benchmark directories may have appeared
		w.addDatasetTrees()
	})
}

// isOwnArtifact reports whether a change event is for one of our own
// output artifacts (prevents re-run loops when an output lives inside a
// watched tree)
func (w *Watcher) isOwnArtifact(path string) bool {
	for _, ds := range w.datasets {
		if filepath.Clean(path) == filepath.Clean(ds.Output) {
			return true
		}
	}
	return false
}
