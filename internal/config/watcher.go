package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lmorandi/reverie/internal/event"
	"github.com/lmorandi/reverie/internal/event/events"
	"github.com/lmorandi/reverie/internal/logging"
)

// ReloadFunc receives the freshly loaded configuration after the watched
// file changes on disk.
type ReloadFunc func(Config)

// Watcher monitors a configuration file and reloads it on modification.
// Each successful reload invokes the callback and publishes a
// ConfigReloaded event through the dispatcher.
type Watcher struct {
	path       string
	fsw        *fsnotify.Watcher
	dispatcher *event.Dispatcher
	onReload   ReloadFunc
	logger     *logging.Logger

	// lastReload debounces editor save sequences that emit several
	// write events for one logical save.
	mu         sync.Mutex
	lastReload time.Time

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// debounceInterval collapses bursts of filesystem events into one reload.
const debounceInterval = 100 * time.Millisecond

// Watch starts watching the configuration file. The parent directory is
// registered with fsnotify because editors typically replace the file
// rather than write it in place.
func Watch(path string, dispatcher *event.Dispatcher, onReload ReloadFunc, logger *logging.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if logger == nil {
		logger = logging.Null
	}

	w := &Watcher{
		path:       absPath,
		fsw:        fsw,
		dispatcher: dispatcher,
		onReload:   onReload,
		logger:     logger,
		done:       make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// loop consumes fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher: %v", err)
		}
	}
}

// reload re-reads the file, notifies the callback, and publishes a
// ConfigReloaded event. Parse failures keep the previous configuration.
func (w *Watcher) reload() {
	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastReload) < debounceInterval {
		w.mu.Unlock()
		return
	}
	w.lastReload = now
	w.mu.Unlock()

	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Error("config reload failed, keeping previous config: %v", err)
		return
	}

	w.logger.Info("config reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
	if w.dispatcher != nil {
		w.dispatcher.Publish(events.NewConfigReloaded(w.path))
	}
}
