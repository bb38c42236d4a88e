// Package watch re-evaluates calc files when they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

type Config struct {
	// Extensions selects the files to report, e.g. ".calc".
	Extensions []string

	// Debounce collapses bursts of events for one file into one call.
	Debounce time.Duration
}

// Handler receives the path of a file that appeared or changed, or with
// removed set when the file is gone.
type Handler func(path string, removed bool)

// Watcher reports files below a directory, or a single file, once at startup
// and again after every change. Handler calls happen on the goroutine
// running Run, one at a time.
type Watcher struct {
	root    string
	single  bool
	cfg     Config
	handle  Handler
	fs      *fsnotify.Watcher
	log     commonlog.Logger
	fire    chan string
	done    chan struct{}
	mu      sync.Mutex
	pending map[string]*time.Timer
}

func New(root string, cfg Config, handle Handler) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", root, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Watcher{
		root:    filepath.Clean(root),
		single:  !info.IsDir(),
		cfg:     cfg,
		handle:  handle,
		fs:      fsw,
		log:     commonlog.GetLogger("calc.watch"),
		fire:    make(chan string),
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}, nil
}

// Run reports every matching file, then watches for changes until ctx is
// cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.done)

	if err := w.scan(); err != nil {
		return err
	}

	w.log.Infof("watching %s", w.root)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			w.event(event)

		case path := <-w.fire:
			w.report(path)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.log.Errorf("watch error: %s", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) scan() error {
	if w.single {
		if err := w.fs.Add(filepath.Dir(w.root)); err != nil {
			return fmt.Errorf("watch %q: %w", w.root, err)
		}
		w.report(w.root)
		return nil
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != w.root && isHidden(path) {
				return filepath.SkipDir
			}
			if err := w.fs.Add(path); err != nil {
				return fmt.Errorf("watch %q: %w", path, err)
			}
			return nil
		}
		if w.Matches(path) {
			w.report(path)
		}
		return nil
	})
}

func (w *Watcher) event(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}

	if !w.single && event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !isHidden(event.Name) {
			if err := w.fs.Add(event.Name); err != nil {
				w.log.Warningf("cannot watch %s: %s", event.Name, err)
			}
			return
		}
	}

	if !w.Matches(event.Name) {
		return
	}

	w.log.Debugf("%s %s", event.Op, event.Name)
	w.debounce(filepath.Clean(event.Name))
}

func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Reset(w.cfg.Debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.cfg.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case w.fire <- path:
		case <-w.done:
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) report(path string) {
	_, err := os.Stat(path)
	w.handle(path, errors.Is(err, fs.ErrNotExist))
}

// Matches reports whether path is a file this watcher reports on.
func (w *Watcher) Matches(path string) bool {
	path = filepath.Clean(path)
	if w.single {
		return path == w.root
	}
	if isHidden(path) {
		return false
	}
	return slices.Contains(w.cfg.Extensions, filepath.Ext(path))
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
