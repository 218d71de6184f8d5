// Package asset provides an optional hot-reload wrapper around
// pkg/asset.LoadFolder. It is the one place in the repository that runs a
// background goroutine; the render pipeline itself is single-threaded.
package asset

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	pkgasset "github.com/Faultbox/asciiray/pkg/asset"
)

// Watcher reloads a model folder whenever a file inside it changes and
// delivers the result on Results. Callers drain Results from the outer
// per-frame loop; nothing here touches scene or render state directly.
type Watcher struct {
	Results chan *pkgasset.LoadResult
	Errors  chan error

	dir string
	dec pkgasset.Decoder
	opt pkgasset.LoadOptions
	log *zap.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher creates a Watcher for dir. Call Start to begin watching.
func NewWatcher(dir string, dec pkgasset.Decoder, opts pkgasset.LoadOptions, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("asset: creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("asset: watching %s: %w", dir, err)
	}
	return &Watcher{
		Results: make(chan *pkgasset.LoadResult, 1),
		Errors:  make(chan error, 1),
		dir:     dir,
		dec:     dec,
		opt:     opts,
		log:     log,
		fsw:     fsw,
		done:    make(chan struct{}),
	}, nil
}

// Start loads the folder once, then reloads on every write/create event
// until Close is called. Runs in its own goroutine.
func (w *Watcher) Start() {
	go w.run()
}

func (w *Watcher) run() {
	w.reload()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	result, err := pkgasset.LoadFolder(w.dir, w.dec, w.opt, w.log)
	if err != nil {
		if w.log != nil {
			w.log.Warn("hot-reload failed", zap.String("dir", w.dir), zap.Error(err))
		}
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	select {
	case w.Results <- result:
	default:
		// Drop a stale pending result rather than block; the newest
		// reload always wins.
		select {
		case <-w.Results:
		default:
		}
		w.Results <- result
	}
}

// Close stops the watcher and releases the underlying fsnotify handle.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
