package config

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path once, then watches it for writes and publishes a fresh
// Config snapshot on the returned channel whenever it changes. Each
// published Config is immutable to its receiver; callers that need
// process-wide access should swap an atomic pointer, not mutate in place
// (see spec.md §5 on the global-configuration model).
//
// The returned stop function releases the underlying watcher and closes the
// channel. Decode errors on reload are logged and skipped; the last good
// Config keeps being used.
func Watch(path string, logger *slog.Logger) (initial Config, updates <-chan Config, stop func() error, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	initial, err = LoadFile(path)
	if err != nil {
		return Config{}, nil, nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("config: creating watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()

		return Config{}, nil, nil, fmt.Errorf("config: watching %s: %w", path, err)
	}

	ch := make(chan Config, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, loadErr := LoadFile(path)
				if loadErr != nil {
					logger.Warn("config: reload failed, keeping previous config", "path", path, "error", loadErr)

					continue
				}
				select {
				case ch <- cfg:
				default:
					// Drop the stale pending update in favor of the new one.
					select {
					case <-ch:
					default:
					}
					ch <- cfg
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config: watcher error", "error", watchErr)
			}
		}
	}()

	return initial, ch, watcher.Close, nil
}
