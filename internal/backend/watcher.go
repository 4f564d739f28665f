package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/dashboard-palette/internal/logging/events"
	"github.com/atomicstack/dashboard-palette/internal/workspace"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindWorkspace Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindWorkspace:
		return "workspace"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event conveys updated data or an error from a reload.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher loads the workspace file and publishes a fresh snapshot whenever
// it changes on disk.
type Watcher struct {
	path     string
	interval time.Duration
	fs       *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher watches the workspace file at path. Bursts of change
// notifications within interval collapse into a single reload.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// Editors replace files by rename, so the directory is watched rather
	// than the file itself.
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		interval: interval,
		fs:       fs,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher; the events channel closes once the loop exits.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer w.fs.Close()

	if !w.emit(w.load()) {
		return
	}

	throttle := newThrottle(w.interval)
	defer throttle.stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			events.Workspace.Change(w.path, ev.Op.String())
			throttle.note()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Kind: KindWorkspace, Err: fmt.Errorf("watch workspace: %w", err)}) {
				return
			}
		case <-throttle.ready():
			throttle.reset()
			if !w.emit(w.load()) {
				return
			}
		}
	}
}

func (w *Watcher) load() Event {
	ws, err := workspace.Load(w.path)
	if err != nil {
		events.Workspace.Error(w.path, err)
		return Event{Kind: KindWorkspace, Err: err}
	}
	events.Workspace.Load(w.path, len(ws.Sections), len(ws.Branches))
	return Event{Kind: KindWorkspace, Data: ws}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
