// Package watch re-reads a habit file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/alexanderramin/futureself/internal/habitfile"
)

// DefaultDebounce collapses the burst of events an editor produces on save.
const DefaultDebounce = 200 * time.Millisecond

// Handler receives each successfully or unsuccessfully loaded scenario.
// A parse error is reported through err and does not stop the watcher.
type Handler func(ctx context.Context, s habitfile.Scenario, err error)

// Watcher follows a single habit file.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   logrus.FieldLogger
	handler  Handler
}

// Option configures a Watcher.
type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Watcher) { w.logger = l }
}

func New(path string, handler Handler, opts ...Option) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		handler:  handler,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		w.logger = l
	}
	return w
}

// Run loads the file once, then again after every debounced change, until ctx
// is cancelled. The parent directory is watched rather than the file so that
// editors which save by rename keep triggering events.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.WithField("path", w.path).Debug("watch_started")

	w.reload(ctx)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.WithField("path", w.path).Debug("watch_stopped")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.WithFields(logrus.Fields{"path": event.Name, "op": event.Op.String()}).Debug("watch_event")
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Warn("watch_error")

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	s, err := habitfile.Load(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("watch_reload_failed")
	}
	w.handler(ctx, s, err)
}
