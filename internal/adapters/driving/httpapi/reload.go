package httpapi

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/minbar-labs/minbar-cli/internal/core/ports/driving"
	"github.com/minbar-labs/minbar-cli/internal/logger"
)

// reloadDelay coalesces the burst of file events an index rebuild
// produces into one reload.
const reloadDelay = 500 * time.Millisecond

// watchParts watches the part directory and swaps in a freshly loaded
// search service after a rebuild. The returned function stops the
// watcher.
func (s *Server) watchParts(ctx context.Context) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(s.partDir); err != nil {
		watcher.Close()
		return nil, err
	}

	go s.reloadLoop(ctx, watcher)

	logger.Debug("Watching %s for index rebuilds", s.partDir)
	return func() { watcher.Close() }, nil
}

// reloadLoop consumes watcher events until the watcher closes or the
// context is cancelled.
func (s *Server) reloadLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			// Restart the debounce window on every event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			s.reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Part watcher error: %v", err)
		}
	}
}

// reload initialises a fresh search service from the rebuilt parts
// and swaps it in if it comes up ready.
func (s *Server) reload(ctx context.Context) {
	logger.Info("Index parts changed, reloading")

	candidate := s.newSearch()
	if candidate == nil {
		logger.Warn("Reload produced no service, keeping current index")
		return
	}
	if err := candidate.Init(ctx); err != nil {
		logger.Warn("Reload failed, keeping current index: %v", err)
		return
	}
	if candidate.State() != driving.StateReady {
		logger.Warn("Reloaded index not ready (state %s), keeping current index", candidate.State())
		return
	}

	s.swap(candidate)
	logger.Info("Index reloaded")
}
