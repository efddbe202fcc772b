// Package watch reloads the slideshow manifest when it changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"studentnet/internal/carousel"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ManifestWatcher watches a single manifest file and reports re-parsed
// slides after edits settle.
type ManifestWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	dir      string
	debounce time.Duration
	onChange func([]carousel.Slide)
	logger   *zap.Logger

	pending time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events    int
	Reloads   int
	Errors    int
	LastEvent time.Time
}

// NewManifestWatcher creates a watcher for path. onChange runs on the
// watcher goroutine.
func NewManifestWatcher(path string, debounce time.Duration, onChange func([]carousel.Slide), logger *zap.Logger) (*ManifestWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ManifestWatcher{
		watcher:  w,
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. The manifest's directory is watched rather than the
// file itself so that editors replacing the file by rename are seen.
func (mw *ManifestWatcher) Start(ctx context.Context) error {
	mw.mu.Lock()
	if mw.running {
		mw.mu.Unlock()
		return nil
	}
	mw.running = true
	mw.mu.Unlock()

	if err := mw.watcher.Add(mw.dir); err != nil {
		mw.mu.Lock()
		mw.running = false
		mw.mu.Unlock()
		return err
	}
	mw.logger.Info("watching manifest", zap.String("path", mw.path))

	go mw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (mw *ManifestWatcher) Stop() {
	mw.mu.Lock()
	wasRunning := mw.running
	mw.running = false
	mw.mu.Unlock()

	if wasRunning {
		close(mw.stopCh)
		<-mw.doneCh
	}
	if err := mw.watcher.Close(); err != nil {
		mw.logger.Warn("error closing watcher", zap.Error(err))
	}
}

// Stats returns a snapshot of watcher activity.
func (mw *ManifestWatcher) Stats() Stats {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.stats
}

func (mw *ManifestWatcher) run(ctx context.Context) {
	defer close(mw.doneCh)

	tick := mw.debounce / 4
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-mw.stopCh:
			return
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			mw.handleEvent(event)
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			mw.logger.Warn("watcher error", zap.Error(err))
			mw.mu.Lock()
			mw.stats.Errors++
			mw.mu.Unlock()
		case <-ticker.C:
			mw.processPending()
		}
	}
}

func (mw *ManifestWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != mw.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	mw.mu.Lock()
	mw.stats.Events++
	mw.stats.LastEvent = time.Now()
	mw.pending = mw.stats.LastEvent
	mw.mu.Unlock()
}

func (mw *ManifestWatcher) processPending() {
	mw.mu.Lock()
	if mw.pending.IsZero() || time.Since(mw.pending) < mw.debounce {
		mw.mu.Unlock()
		return
	}
	mw.pending = time.Time{}
	mw.mu.Unlock()

	slides, err := carousel.LoadManifest(mw.path)
	if err != nil {
		// Half-written files are common mid-save; keep the old slides.
		mw.logger.Warn("manifest reload failed", zap.Error(err))
		mw.mu.Lock()
		mw.stats.Errors++
		mw.mu.Unlock()
		return
	}

	mw.mu.Lock()
	mw.stats.Reloads++
	mw.mu.Unlock()

	mw.logger.Info("manifest reloaded", zap.Int("slides", len(slides)))
	if mw.onChange != nil {
		mw.onChange(slides)
	}
}
