package population

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// CatalogUpdate carries a re-read catalog or the error from reading it.
type CatalogUpdate struct {
	Specs []Spec
	Err   error
}

// CatalogWatcher re-reads a catalog file whenever it changes on disk.
// It watches the containing directory so editors that replace the file
// are seen too.
type CatalogWatcher struct {
	Path    string
	Updates <-chan CatalogUpdate

	updates chan CatalogUpdate
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewCatalogWatcher creates a watcher for the catalog at path.
func NewCatalogWatcher(path string) (*CatalogWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan CatalogUpdate, 4)
	return &CatalogWatcher{
		Path:    abs,
		Updates: ch,
		updates: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching.
func (w *CatalogWatcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Updates channel.
func (w *CatalogWatcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.updates)
}

func (w *CatalogWatcher) loop() {
	defer close(w.done)

	// Editors write in bursts; wait for the file to settle.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				specs, err := LoadCatalog(w.Path)
				w.emit(CatalogUpdate{Specs: specs, Err: err})
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// emit drops the update when the consumer is behind; a later write
// produces a fresh one.
func (w *CatalogWatcher) emit(u CatalogUpdate) {
	select {
	case w.updates <- u:
	default:
	}
}
