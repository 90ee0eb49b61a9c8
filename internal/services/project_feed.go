package services

import (
	"context"
	"slices"
	"sync"

	"github.com/alimgiray/folio/internal/models"
)

// ProjectFeed is the single-fetch data source behind one projects view.
// It starts in loading and resolves exactly once to populated or failed.
type ProjectFeed struct {
	source ProjectSource

	once   sync.Once
	done   chan struct{}
	mu     sync.RWMutex
	state  models.FeedState
	result models.FeedResult
	closed bool
	cancel context.CancelFunc
}

func NewProjectFeed(source ProjectSource) *ProjectFeed {
	return &ProjectFeed{
		source: source,
		done:   make(chan struct{}),
		state:  models.FeedStateLoading,
	}
}

// Start issues the fetch in the background. Only the first call has any effect.
func (f *ProjectFeed) Start(ctx context.Context) {
	f.once.Do(func() {
		fetchCtx, cancel := context.WithCancel(ctx)

		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			cancel()
			close(f.done)
			return
		}
		f.cancel = cancel
		f.mu.Unlock()

		go func() {
			defer cancel()
			defer close(f.done)
			f.resolve(f.source.Fetch(fetchCtx))
		}()
	})
}

func (f *ProjectFeed) resolve(result models.FeedResult) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The view is gone; nobody is left to observe the result
	if f.closed {
		return
	}

	f.result = result
	if result.OK() {
		f.state = models.FeedStatePopulated
	} else {
		f.state = models.FeedStateFailed
	}
}

// Wait blocks until the fetch resolves, the feed is closed or ctx is done
func (f *ProjectFeed) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the fetch goroutine has finished
func (f *ProjectFeed) Done() <-chan struct{} {
	return f.done
}

// Close cancels an in-flight fetch. A result arriving afterwards is discarded.
func (f *ProjectFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *ProjectFeed) State() models.FeedState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Snapshot returns the current state in renderable form
func (f *ProjectFeed) Snapshot() models.FeedSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snapshot := models.FeedSnapshot{
		State:    f.state,
		Projects: []models.Project{},
	}
	switch f.state {
	case models.FeedStatePopulated:
		if f.result.Projects != nil {
			snapshot.Projects = slices.Clone(f.result.Projects)
		}
	case models.FeedStateFailed:
		snapshot.Error = "Projects are unavailable right now."
	}
	return snapshot
}
