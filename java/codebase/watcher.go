package codebase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a Watcher waits for the file system to settle
// before reloading.
const DefaultDebounce = 300 * time.Millisecond

// Watcher keeps a Codebase in sync with its inputs. Changes are batched:
// after a quiet period every touched input is reloaded or removed, and
// OnChange is called once with the affected paths.
type Watcher struct {
	Debounce time.Duration
	OnChange func(paths []string)

	codebase *Codebase
	pattern  string
	roots    []string
	files    map[string]bool

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer

	// flushing serializes flushes, so a reload never runs while OnChange
	// of an earlier batch is still reading the codebase.
	flushing sync.Mutex
}

func NewWatcher(c *Codebase, pattern string) *Watcher {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Watcher{
		Debounce: DefaultDebounce,
		codebase: c,
		pattern:  pattern,
		files:    make(map[string]bool),
		pending:  make(map[string]bool),
	}
}

// Watch observes paths until ctx is cancelled. Directories are watched
// recursively for inputs matching the pattern; files are watched as given.
// The paths are expected to have been scanned already.
func (w *Watcher) Watch(ctx context.Context, paths ...string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			w.files[filepath.Clean(path)] = true
			if err := fsw.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			continue
		}
		w.roots = append(w.roots, filepath.Clean(path))
		if err := addRecursive(fsw, path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	log.Infof("Watching %d directories for changes.", len(fsw.WatchList()))

	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warningf("Watch error: %s", err)
		}
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return walkDirectories(root, func(dir string) error {
		if err := fsw.Add(dir); err != nil {
			log.Warningf("Cannot watch %s: %s", dir, err)
		}
		return nil
	})
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	path := filepath.Clean(event.Name)
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if w.underRoot(path) {
				if err := addRecursive(fsw, path); err != nil {
					log.Warningf("Cannot watch %s: %s", path, err)
				}
			}
			return
		}
	}
	if !w.wanted(path) {
		return
	}
	log.Debugf("%s: %s", event.Op, path)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[path] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Debounce, w.flush)
}

func (w *Watcher) underRoot(path string) bool {
	for _, root := range w.roots {
		if _, ok := relativeTo(root, path); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) wanted(path string) bool {
	if w.files[path] {
		return true
	}
	if !Supported(path) {
		return false
	}
	for _, root := range w.roots {
		rel, ok := relativeTo(root, path)
		if !ok {
			continue
		}
		if match, _ := doublestar.Match(w.pattern, rel); match {
			return true
		}
	}
	return false
}

// relativeTo returns path relative to root in slash form, if it lies below root.
func relativeTo(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (w *Watcher) flush() {
	w.flushing.Lock()
	defer w.flushing.Unlock()

	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			log.Infof("Removing %s.", path)
			w.codebase.Remove(path)
			continue
		}
		log.Infof("Reloading %s.", path)
		if err := w.codebase.Load(path); err != nil {
			log.Errorf("%s", err)
		}
	}
	if w.OnChange != nil {
		w.OnChange(paths)
	}
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
