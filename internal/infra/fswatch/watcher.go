package fswatch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher watches files and directories for writes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	limiter   *rate.Limiter
	callbacks []func(string)
	files     map[string]bool // individually watched files
	dirs      map[string]bool // directories watched as a whole
	mu        sync.RWMutex
	done      chan struct{}
	stopOnce  sync.Once
	logger    *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithRate limits notifications to r per second with the given burst.
func WithRate(r rate.Limit, burst int) Option {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(r, burst)
	}
}

// New creates a new watcher. Notifications are unthrottled unless WithRate
// is given.
func New(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		limiter: rate.NewLimiter(rate.Inf, 1),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		done:    make(chan struct{}),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch adds a file or directory.
func (w *Watcher) Watch(path string) error {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error("failed to watch directory", "path", dir, "error", err)
		return err
	}

	w.mu.Lock()
	if info.IsDir() {
		w.dirs[path] = true
	} else {
		w.files[path] = true
	}
	w.mu.Unlock()

	w.logger.Debug("watching for changes", "path", path, "dir", info.IsDir())
	return nil
}

// OnChange registers a callback that receives the path of a changed file.
func (w *Watcher) OnChange(callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start watches until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.logger.Info("watcher started")

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			w.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			w.notify(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.logger.Info("watcher stopped")
	})
	return err
}

// matches reports whether a changed path is one we care about.
func (w *Watcher) matches(path string) bool {
	path = filepath.Clean(path)

	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path] || w.dirs[filepath.Dir(path)]
}

func (w *Watcher) notify(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(path)
	}
}
