package repositories

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/database"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *ContactMessageRepository {
	t.Helper()
	logger.SetOutput(io.Discard)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunSQLScripts(db, "../../migrations"))
	return NewContactMessageRepository(db)
}

func newMessage(name string, createdAt time.Time) *models.ContactMessage {
	message := models.NewContactMessage(models.ContactForm{
		FromName:  name,
		FromEmail: name + "@example.com",
		Message:   "Hello from " + name,
	})
	message.CreatedAt = createdAt
	message.UpdatedAt = createdAt
	return message
}

func TestContactMessageCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	message := newMessage("ada", time.Now())
	require.NoError(t, repo.Create(ctx, message))

	stored, err := repo.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.Equal(t, message.ID, stored.ID)
	assert.Equal(t, "ada", stored.FromName)
	assert.Equal(t, "ada@example.com", stored.FromEmail)
	assert.Equal(t, models.ContactStatusPending, stored.Status)
	assert.Nil(t, stored.RelayError)
}

func TestContactMessageUpdateStatus(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	message := newMessage("grace", time.Now())
	require.NoError(t, repo.Create(ctx, message))

	message.MarkFailed("relay returned status 400")
	require.NoError(t, repo.UpdateStatus(ctx, message))

	stored, err := repo.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusFailed, stored.Status)
	require.NotNil(t, stored.RelayError)
	assert.Equal(t, "relay returned status 400", *stored.RelayError)

	message.MarkSent()
	require.NoError(t, repo.UpdateStatus(ctx, message))

	stored, err = repo.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsSent())
	assert.Nil(t, stored.RelayError)
}

func TestContactMessageUpdateUnknown(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateStatus(context.Background(), newMessage("nobody", time.Now()))
	assert.ErrorIs(t, err, ErrContactMessageNotFound)
}

func TestContactMessageGetUnknown(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrContactMessageNotFound)
}

func TestContactMessageListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, newMessage(name, base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].FromName)
	assert.Equal(t, "first", all[2].FromName)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestContactMessageListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	messages, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
