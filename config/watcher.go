package config

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"time"

	"code.obcore.io/book/logging"
	"github.com/BurntSushi/toml"
	"github.com/cenkalti/backoff"
	"github.com/fsnotify/fsnotify"
	"github.com/imdario/mergo"
	"github.com/spf13/afero"
)

const namedLogger = "config-watcher"

// Watcher holds the current Config, reloading it whenever the backing
// file changes: an fsnotify subscription drives reload-and-notify, and
// the load itself is guarded by a mutex so Get is safe to call from any
// goroutine.
//
// The filesystem is reached through afero.Fs rather than the os
// package directly, so a test can substitute an in-memory filesystem
// for the initial load and fallback paths. fsnotify only observes a
// real OS filesystem, though, so exercising the reload-on-write path
// itself still needs afero.NewOsFs() over a real directory.
type Watcher struct {
	log  *logging.Logger
	fs   afero.Fs
	path string

	mu  sync.Mutex
	cfg Config

	listeners []func(Config)
}

// NewWatcher loads path once via fs, then starts watching its parent
// directory for writes until ctx is done. If the initial load fails,
// the returned Watcher still holds the supplied defaults. Watching is
// best-effort: on a filesystem fsnotify cannot observe (an in-memory
// afero.Fs in a test, a missing directory), NewWatcher still succeeds
// with hot-reload simply disabled.
func NewWatcher(ctx context.Context, log *logging.Logger, fs afero.Fs, path string, defaults Config) (*Watcher, error) {
	if log == nil {
		log = logging.NewDevLogger()
	}
	w := &Watcher{
		log:  log.Named(namedLogger),
		fs:   fs,
		path: path,
		cfg:  defaults,
	}

	if err := w.reload(); err != nil {
		w.log.Warn("initial configuration load failed, using defaults", logging.Error(err))
	}

	w.watch(ctx)

	return w, nil
}

// Get returns the current configuration snapshot.
func (w *Watcher) Get() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// OnConfigUpdate registers f to be called, with the new configuration,
// after every successful reload.
func (w *Watcher) OnConfigUpdate(f func(Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, f)
}

// reload re-reads the config file and merges it over the current
// in-memory config, retrying transient read errors (the file being
// mid-write from an atomic rename, say) with a bounded exponential
// backoff before giving up and leaving the last-known-good config in
// place.
func (w *Watcher) reload() error {
	var buf []byte

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 20 * time.Millisecond
	policy.MaxElapsedTime = 200 * time.Millisecond

	err := backoff.Retry(func() error {
		b, err := afero.ReadFile(w.fs, w.path)
		if err != nil {
			return err
		}
		buf = b
		return nil
	}, policy)
	if err != nil {
		return err
	}

	var loaded Config
	if _, err := toml.NewDecoder(bytes.NewReader(buf)).Decode(&loaded); err != nil {
		return err
	}

	w.mu.Lock()
	merged := w.cfg
	if err := mergo.Merge(&merged, loaded, mergo.WithOverride); err != nil {
		w.mu.Unlock()
		return err
	}
	w.cfg = merged
	listeners := append([]func(Config){}, w.listeners...)
	w.mu.Unlock()

	for _, f := range listeners {
		f(merged)
	}
	return nil
}

// watch subscribes to the config file's parent directory rather than
// the file itself, so a reload still fires after an editor's
// write-to-temp-then-rename and so the watch can be armed before the
// file is first created. Failure to arm the watch is logged, not
// returned: a Watcher with hot-reload disabled is still usable via Get.
func (w *Watcher) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Warn("configuration hot-reload disabled: could not start fsnotify watcher", logging.Error(err))
		return
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.log.Warn("configuration hot-reload disabled: could not watch config directory", logging.Error(err))
		watcher.Close()
		return
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.log.Info("configuration file changed", logging.String("event", event.Name))
					if err := w.reload(); err != nil {
						w.log.Error("unable to reload configuration", logging.Error(err))
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.Error("config watcher received error event", logging.Error(err))
			case <-ctx.Done():
				return
			}
		}
	}()
}
