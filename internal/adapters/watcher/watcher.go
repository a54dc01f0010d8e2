package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"vimbridge/internal/domain"
)

// DefaultWindow is how long the watcher waits for more events before
// reporting a batch
const DefaultWindow = 500 * time.Millisecond

// skipDirs are never watched. They hold generated files only.
var skipDirs = map[string]bool{
	"Library": true,
	"Temp":    true,
	"Logs":    true,
	"obj":     true,
}

// Watcher turns file system events under a project root into ChangeSet batches
type Watcher struct {
	fsw     *fsnotify.Watcher
	root    string
	window  time.Duration
	onBatch func(domain.ChangeSet)
	logger  *log.Logger

	// files and dirs known under root; only touched from Run's goroutine
	files map[string]bool
	dirs  map[string]bool
}

// New creates a watcher over every directory below root. onBatch is called
// from Run's goroutine once events have been quiet for window.
func New(root string, window time.Duration, onBatch func(domain.ChangeSet), logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	w := &Watcher{
		fsw:     fsw,
		root:    root,
		window:  window,
		onBatch: onBatch,
		logger:  logger,
		files:   map[string]bool{},
		dirs:    map[string]bool{},
	}
	if _, err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches every directory under root and returns the regular files
// it found there, which become known to the watcher.
func (w *Watcher) addTree(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if d.Type().IsRegular() && !w.files[path] {
				w.files[path] = true
				found = append(found, path)
			}
			return nil
		}
		if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.dirs[path] = true
		return nil
	})
	return found, err
}

// forget drops path and everything known below it, returning the files that
// were dropped. A path that was never known yields nothing.
func (w *Watcher) forget(path string) []string {
	var gone []string
	if w.files[path] {
		delete(w.files, path)
		gone = append(gone, path)
	}
	if !w.dirs[path] {
		return gone
	}

	prefix := path + string(filepath.Separator)
	for f := range w.files {
		if strings.HasPrefix(f, prefix) {
			delete(w.files, f)
			gone = append(gone, f)
		}
	}
	for d := range w.dirs {
		if d == path || strings.HasPrefix(d, prefix) {
			delete(w.dirs, d)
			_ = w.fsw.Remove(d)
		}
	}
	sort.Strings(gone)
	return gone
}

// handle turns one fsnotify event into batch entries and reports whether the
// batch changed
func (w *Watcher) handle(b *batch, ev fsnotify.Event) bool {
	switch {
	case ev.Has(fsnotify.Create):
		info, err := os.Stat(ev.Name)
		if err != nil {
			return false
		}
		if info.IsDir() {
			found, err := w.addTree(ev.Name)
			if err != nil {
				w.logger.Printf("watch: %v", err)
			}
			return b.created(found)
		}
		if w.files[ev.Name] {
			return false
		}
		w.files[ev.Name] = true
		return b.created([]string{ev.Name})

	case ev.Has(fsnotify.Rename):
		return b.renamed(w.forget(ev.Name))

	case ev.Has(fsnotify.Remove):
		return b.removed(w.forget(ev.Name))

	case ev.Has(fsnotify.Write):
		if !w.files[ev.Name] {
			return false
		}
		b.written(ev.Name)
		return true
	}
	return false
}

// Run processes events until ctx is cancelled. Pending changes are flushed
// before it returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var b batch
	timer := time.NewTimer(w.window)
	timer.Stop()

	flush := func() {
		if changes := b.take(); !changes.IsEmpty() {
			w.onBatch(changes)
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				flush()
				return nil
			}
			if w.handle(&b, ev) {
				timer.Reset(w.window)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				flush()
				return nil
			}
			w.logger.Printf("watch: %v", err)

		case <-timer.C:
			flush()
		}
	}
}

// batch accumulates file paths into a ChangeSet. fsnotify reports a move as a
// Rename of the old path followed by a Create of the new one, so a Create
// that follows a pending Rename is counted as a move. Renames still pending
// when the batch is taken left the tree and are reported as deletions.
// A directory contributes the files below it, one entry each.
type batch struct {
	changes domain.ChangeSet
	pending [][]string
}

func (b *batch) created(paths []string) bool {
	if len(paths) == 0 {
		return false
	}
	if len(b.pending) > 0 {
		b.changes.MovedFrom = append(b.changes.MovedFrom, b.pending[0]...)
		b.pending = b.pending[1:]
		b.changes.Moved = append(b.changes.Moved, paths...)
		return true
	}
	b.changes.Added = append(b.changes.Added, paths...)
	return true
}

func (b *batch) renamed(paths []string) bool {
	if len(paths) == 0 {
		return false
	}
	b.pending = append(b.pending, paths)
	return true
}

func (b *batch) removed(paths []string) bool {
	if len(paths) == 0 {
		return false
	}
	b.changes.Deleted = append(b.changes.Deleted, paths...)
	return true
}

func (b *batch) written(path string) {
	b.changes.Imported = append(b.changes.Imported, path)
}

func (b *batch) take() domain.ChangeSet {
	for _, paths := range b.pending {
		b.changes.Deleted = append(b.changes.Deleted, paths...)
	}
	changes := b.changes
	*b = batch{}
	return changes
}
