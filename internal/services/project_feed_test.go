package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource blocks until release is closed (if set) and counts calls
type stubSource struct {
	result  models.FeedResult
	release chan struct{}
	calls   int32
	sawDone chan struct{}
}

func (s *stubSource) Fetch(ctx context.Context) models.FeedResult {
	atomic.AddInt32(&s.calls, 1)
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			if s.sawDone != nil {
				close(s.sawDone)
			}
			return models.FeedResult{Err: ctx.Err()}
		}
	}
	return s.result
}

func waitFeed(t *testing.T, feed *ProjectFeed) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, feed.Wait(ctx))
}

func TestProjectFeedStartsLoading(t *testing.T) {
	feed := NewProjectFeed(&stubSource{})

	assert.Equal(t, models.FeedStateLoading, feed.State())
	snapshot := feed.Snapshot()
	assert.Equal(t, models.FeedStateLoading, snapshot.State)
	assert.NotNil(t, snapshot.Projects)
	assert.Empty(t, snapshot.Projects)
}

func TestProjectFeedPopulated(t *testing.T) {
	projects := []models.Project{{ID: 1, Title: "repo-a"}, {ID: 2, Title: "repo-b"}}
	source := &stubSource{result: models.FeedResult{Projects: projects}}
	feed := NewProjectFeed(source)

	feed.Start(context.Background())
	waitFeed(t, feed)

	assert.Equal(t, models.FeedStatePopulated, feed.State())
	snapshot := feed.Snapshot()
	assert.Equal(t, projects, snapshot.Projects)
	assert.Empty(t, snapshot.Error)
}

func TestProjectFeedPopulatedEmpty(t *testing.T) {
	feed := NewProjectFeed(&stubSource{result: models.FeedResult{}})

	feed.Start(context.Background())
	waitFeed(t, feed)

	snapshot := feed.Snapshot()
	assert.Equal(t, models.FeedStatePopulated, snapshot.State)
	assert.NotNil(t, snapshot.Projects)
	assert.Empty(t, snapshot.Projects)
}

func TestProjectFeedFailed(t *testing.T) {
	source := &stubSource{result: models.FeedResult{Projects: []models.Project{}, Err: ErrFeedUnavailable}}
	feed := NewProjectFeed(source)

	feed.Start(context.Background())
	waitFeed(t, feed)

	snapshot := feed.Snapshot()
	assert.Equal(t, models.FeedStateFailed, snapshot.State)
	assert.Empty(t, snapshot.Projects)
	assert.NotEmpty(t, snapshot.Error)
}

func TestProjectFeedFetchesOnce(t *testing.T) {
	source := &stubSource{result: models.FeedResult{Projects: []models.Project{{ID: 1}}}}
	feed := NewProjectFeed(source)

	for i := 0; i < 5; i++ {
		feed.Start(context.Background())
	}
	waitFeed(t, feed)
	feed.Start(context.Background())

	assert.Equal(t, int32(1), atomic.LoadInt32(&source.calls))
	assert.Equal(t, models.FeedStatePopulated, feed.State())
}

func TestProjectFeedCloseCancelsFetch(t *testing.T) {
	source := &stubSource{
		result:  models.FeedResult{Projects: []models.Project{{ID: 1}}},
		release: make(chan struct{}),
		sawDone: make(chan struct{}),
	}
	feed := NewProjectFeed(source)

	feed.Start(context.Background())
	feed.Close()

	select {
	case <-source.sawDone:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}
	waitFeed(t, feed)

	// Result discarded: the view never leaves loading
	assert.Equal(t, models.FeedStateLoading, feed.State())
}

func TestProjectFeedParentContextCancel(t *testing.T) {
	source := &stubSource{release: make(chan struct{})}
	feed := NewProjectFeed(source)

	ctx, cancel := context.WithCancel(context.Background())
	feed.Start(ctx)
	cancel()
	waitFeed(t, feed)

	snapshot := feed.Snapshot()
	assert.Equal(t, models.FeedStateFailed, snapshot.State)
}

func TestProjectFeedStartAfterClose(t *testing.T) {
	source := &stubSource{}
	feed := NewProjectFeed(source)

	feed.Close()
	feed.Start(context.Background())
	waitFeed(t, feed)

	assert.Equal(t, int32(0), atomic.LoadInt32(&source.calls))
	assert.Equal(t, models.FeedStateLoading, feed.State())
}

func TestProjectFeedWaitHonoursContext(t *testing.T) {
	source := &stubSource{release: make(chan struct{})}
	feed := NewProjectFeed(source)
	feed.Start(context.Background())
	defer close(source.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := feed.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, models.FeedStateLoading, feed.State())
}

func TestProjectFeedSnapshotIsACopy(t *testing.T) {
	projects := []models.Project{{ID: 1, Title: "repo-a"}}
	feed := NewProjectFeed(&stubSource{result: models.FeedResult{Projects: projects}})

	feed.Start(context.Background())
	waitFeed(t, feed)

	first := feed.Snapshot()
	first.Projects[0].Title = "changed"

	assert.Equal(t, "repo-a", feed.Snapshot().Projects[0].Title)
	assert.Equal(t, "repo-a", projects[0].Title)
}
