// Package watcher reloads the configuration file when it changes on
// disk. Filesystem events are debounced (editors often emit several
// events per save, and some replace the file via rename) and each
// successful reload is delivered as a complete snapshot on a channel;
// the application loop swaps it into the engine. A reload that fails
// to parse or validate is reported and otherwise ignored, keeping the
// last good configuration.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/markstorm/internal/config"
	"github.com/dshills/markstorm/internal/config/loader"
)

// DefaultDebounce is the quiet period required after the last
// filesystem event before a reload is attempted.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches one configuration file.
type Watcher struct {
	path     string
	debounce time.Duration
	reloads  chan config.Config
	onError  func(error)

	fsw *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets a callback for reload and watch errors.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New creates a watcher for the given config file. The file's
// directory is watched rather than the file itself, so saves that
// replace the file via rename are still seen.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		reloads:  make(chan config.Config, 1),
		onError:  func(error) {},
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Reloads returns the channel freshly loaded snapshots arrive on.
func (w *Watcher) Reloads() <-chan config.Config {
	return w.reloads
}

// Start runs the watch loop until the context is cancelled. It owns
// the goroutine boundary: nothing here touches engine state, reloaded
// snapshots cross back to the main loop over the Reloads channel.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(fmt.Errorf("config watch: %w", err))

		case <-fire:
			timer = nil
			fire = nil
			cfg, err := loader.Load(w.path)
			if err != nil {
				w.onError(fmt.Errorf("config reload: %w", err))
				continue
			}
			// Replace a pending snapshot rather than blocking; only
			// the newest matters.
			select {
			case <-w.reloads:
			default:
			}
			w.reloads <- cfg
		}
	}
}
