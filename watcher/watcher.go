package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long to wait after the last write before
// regenerating. Editors often emit several events per save.
const debounceDelay = 500 * time.Millisecond

// Regenerator rebuilds the asset set from the current source image
type Regenerator interface {
	Regenerate() error
}

// Watcher monitors the source image and triggers regeneration on changes
type Watcher struct {
	source  string
	regen   Regenerator
	watcher *fsnotify.Watcher
	events  chan Event

	// mu guards the event channel and debounce timer against Stop racing
	// an in-flight debounce callback
	mu       sync.Mutex
	closed   bool
	debounce *time.Timer
}

// Event represents a file system event on the source image
type Event struct {
	Type     EventType
	FilePath string
}

// EventType represents the type of file event
type EventType int

const (
	EventModified EventType = iota
	EventDeleted
)

// NewWatcher creates a watcher for the given source image
func NewWatcher(source string, regen Regenerator) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		source:  source,
		regen:   regen,
		watcher: fsWatcher,
		events:  make(chan Event, 100),
	}, nil
}

// Start begins monitoring the source image's directory. Watching the
// directory rather than the file keeps the watch alive across editors that
// save via rename.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.source)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching %s for changes", w.source)

	go w.processEvents()

	return nil
}

// processEvents filters fsnotify events down to the source image and
// debounces rapid successive writes before regenerating
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.source) {
				continue
			}

			if event.Op&fsnotify.Remove == fsnotify.Remove {
				log.Printf("Source removed: %s", event.Name)
				w.emit(Event{Type: EventDeleted, FilePath: event.Name})
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.mu.Lock()
			if !w.closed {
				if w.debounce != nil {
					w.debounce.Stop()
				}
				w.debounce = time.AfterFunc(debounceDelay, func() {
					w.handleChange(event.Name)
				})
			}
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// emit sends an event unless the watcher has been stopped. Reports whether
// the event was delivered.
func (w *Watcher) emit(event Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.events <- event
	return true
}

// handleChange regenerates the asset set after a source change. Failures
// are logged and watching continues; the next change gets another attempt.
func (w *Watcher) handleChange(path string) {
	if !w.emit(Event{Type: EventModified, FilePath: path}) {
		return
	}
	log.Printf("Source changed: %s", path)

	if err := w.regen.Regenerate(); err != nil {
		log.Printf("Regeneration failed: %v", err)
	}
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and closes the event channel so consumers
// ranging over Events exit
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	close(w.events)
	w.mu.Unlock()

	return w.watcher.Close()
}
