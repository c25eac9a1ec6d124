package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of files. Bursts of events are collapsed
// into one callback per quiet period.
type Watcher struct {
	files    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
	onChange func(path string)

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	timer   *time.Timer
	pending string
	stop    chan struct{}
	once    sync.Once
}

// NewWatcher creates a watcher for the given files.
func NewWatcher(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		files:    files,
		debounce: debounce,
		logger:   logger,
		watcher:  fsw,
		stop:     make(chan struct{}),
	}, nil
}

// OnChange sets the callback run after a change settles.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// Start watches the directories holding the files until ctx is done or Stop
// is called. Directories are watched rather than files so that editors that
// replace files on save are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for file := range w.files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	w.logger.Info("watching for changes", "files", len(w.files))
	go w.loop(ctx)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
				w.trigger(event.Name)
			} else if event.Op&fsnotify.Remove != 0 {
				w.logger.Warn("watched file removed", "file", event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) trigger(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = path
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	path, fn := w.pending, w.onChange
	w.mu.Unlock()

	select {
	case <-w.stop:
		return
	default:
	}
	if fn != nil {
		fn(path)
	}
}
