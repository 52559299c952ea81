// Package watcher provides the file watcher behind the watch mode, which
// rebuilds a component whenever files under its source directory change.
// Rapid change bursts are debounced into a single rebuild.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a file change event.
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
}

// EventType represents the type of file change.
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a path should be watched.
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of file change events.
type ChangeHandler func(events []ChangeEvent) error

// FileWatcher watches directories for file changes with debouncing.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	filters   []FileFilter
	handlers  []ChangeHandler
	mutex     sync.RWMutex
}

// debouncer groups rapid file changes together.
type debouncer struct {
	delay   time.Duration
	events  chan ChangeEvent
	output  chan []ChangeEvent
	timer   *time.Timer
	pending []ChangeEvent
	mutex   sync.Mutex
}

// NewFileWatcher creates a new file watcher with the given debounce delay.
func NewFileWatcher(debounceDelay time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher: watcher,
		debouncer: &debouncer{
			delay:   debounceDelay,
			events:  make(chan ChangeEvent, 100),
			output:  make(chan []ChangeEvent, 10),
			pending: make([]ChangeEvent, 0),
		},
		filters:  make([]FileFilter, 0),
		handlers: make([]ChangeHandler, 0),
	}, nil
}

// AddFilter adds a file filter. With no filters configured every path
// matches.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler adds a change handler.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddRecursive watches a directory tree.
func (fw *FileWatcher) AddRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return fw.watcher.Add(path)
		}
		return nil
	})
}

// Start begins watching and dispatching debounced change batches to the
// registered handlers. It blocks until the context is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) error {
	go fw.debouncer.run(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case batch, ok := <-fw.debouncer.output:
				if !ok {
					return
				}
				fw.dispatch(batch)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return fw.watcher.Close()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if change, matched := fw.translate(event); matched {
				fw.debouncer.add(change)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			_ = err // transient watch errors are ignored; the next event retries
		}
	}
}

// translate converts an fsnotify event into a ChangeEvent, applying the
// configured filters.
func (fw *FileWatcher) translate(event fsnotify.Event) (ChangeEvent, bool) {
	fw.mutex.RLock()
	filters := fw.filters
	fw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return ChangeEvent{}, false
		}
	}

	change := ChangeEvent{Path: event.Name, ModTime: time.Now()}

	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = EventTypeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = EventTypeModified
	case event.Op&fsnotify.Remove != 0:
		change.Type = EventTypeDeleted
	case event.Op&fsnotify.Rename != 0:
		change.Type = EventTypeRenamed
	default:
		return ChangeEvent{}, false
	}

	return change, true
}

// dispatch hands a batch of events to every registered handler.
func (fw *FileWatcher) dispatch(batch []ChangeEvent) {
	fw.mutex.RLock()
	handlers := fw.handlers
	fw.mutex.RUnlock()

	for _, handler := range handlers {
		_ = handler(batch)
	}
}

// add queues an event into the debounce window.
func (d *debouncer) add(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = append(d.pending, event)

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.flush)
}

// flush emits the pending batch.
func (d *debouncer) flush() {
	d.mutex.Lock()
	batch := d.pending
	d.pending = make([]ChangeEvent, 0)
	d.mutex.Unlock()

	if len(batch) > 0 {
		d.output <- batch
	}
}

func (d *debouncer) run(ctx context.Context) {
	<-ctx.Done()

	d.mutex.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mutex.Unlock()
}
