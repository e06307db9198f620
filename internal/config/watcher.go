package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MikeBiancalana/quickdate/internal/logger"
)

const debounceDelay = 100 * time.Millisecond

// Watcher reloads a config file when it changes and publishes the result
type Watcher struct {
	path          string
	watcher       *fsnotify.Watcher
	logger        *slog.Logger
	changes       chan *Config
	done          chan struct{}
	mu            sync.Mutex
	debounceTimer *time.Timer
	stopped       bool
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		watcher: fsWatcher,
		logger:  logger.OrDefault(log),
		changes: make(chan *Config, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file so editors that replace the file on save are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher and closes the Changes channel
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true

	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
	close(w.changes)
}

// Changes delivers each successfully reloaded config
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// reload runs after the debounce delay
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	// keep only the newest config if the consumer is behind
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}
