package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"confvet-hq/confvet/pkg/telemetry/logging"
)

// Watcher watches configuration files for changes and triggers
// revalidation. It implements debouncing to prevent revalidation storms
// when editors write files in bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *logging.Logger
	config   *WatcherConfig
	debounce *Debouncer

	// State
	mu           sync.RWMutex
	running      bool
	watchingFile bool
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// WatcherConfig contains configuration for the file watcher.
type WatcherConfig struct {
	// Path is the file or directory to watch
	Path string

	// DebounceInterval is the time to wait before triggering revalidation
	// after detecting file changes (default: 250ms)
	DebounceInterval time.Duration
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 250 * time.Millisecond,
	}
}

// NewWatcher creates a new file watcher.
func NewWatcher(config *WatcherConfig, logger *logging.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultWatcherConfig()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = DefaultWatcherConfig().DebounceInterval
	}

	if logger == nil {
		logger = logging.Discard()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	return w, nil
}

// Watch starts watching for file changes and invokes onChange after each
// debounced burst of events. This is a blocking operation that runs until
// the context is cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	w.logger.Info("file watcher started",
		"path", w.config.Path,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("file watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("file watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("file event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			w.debounce.Trigger(func() {
				w.logger.Info("triggering revalidation",
					"path", event.Name,
					"op", event.Op.String(),
				)

				if err := onChange(); err != nil {
					w.logger.Error("revalidation failed",
						"error", err,
					)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			w.logger.Error("file watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Stop stops the file watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)

	<-w.doneCh

	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	return nil
}

// addPath adds a file or directory to the watcher. For a single file the
// containing directory is watched instead, since editors typically replace
// files by rename and fsnotify loses the watch on the old inode.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return w.watcher.Add(path)
	}

	w.watchingFile = true
	return w.watcher.Add(filepath.Dir(path))
}

// shouldProcessEvent determines if an event should trigger revalidation.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	// Skip permission-only changes
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	// When watching a single file, only its own events count
	if w.watchingFile {
		return filepath.Clean(event.Name) == filepath.Clean(w.config.Path)
	}

	return IsConfigFile(event.Name)
}

// IsConfigFile reports whether a path names a configuration file confvet
// validates: *.json, *.env, or a dotfile named .env or .env.*. Dotenv
// files are hidden files, so hidden names are not skipped here.
func IsConfigFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return true
	}
	switch filepath.Ext(base) {
	case ".json", ".env":
		return true
	}
	return false
}

// Debouncer collapses rapid event bursts and triggers the callback only
// after a quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger triggers the debouncer with a new event.
// The callback will be called after the debounce interval if no new events occur.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			d.mu.Lock()
			cb := d.callback
			d.mu.Unlock()

			if cb != nil {
				cb()
			}
		}
	})
}

// Stop stops the debouncer and cancels any pending callbacks.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
