package services

import (
	"testing"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessagesWorkbook(t *testing.T) {
	reason := "status 400"
	messages := []*models.ContactMessage{
		{
			ID:        "a1",
			FromName:  "Ada",
			FromEmail: "ada@example.com",
			Message:   "Hello",
			Status:    models.ContactStatusSent,
			CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         "b2",
			FromName:   "Grace",
			FromEmail:  "grace@example.com",
			Message:    "Hi there",
			Status:     models.ContactStatusFailed,
			RelayError: &reason,
			CreatedAt:  time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	f, err := NewExportService().ContactMessagesWorkbook(messages)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Messages")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, messageHeaders, rows[0])
	assert.Equal(t, []string{"a1", "2024-03-01 09:30:00", "Ada", "ada@example.com", "sent", "", "Hello"}, rows[1])
	assert.Equal(t, "failed", rows[2][4])
	assert.Equal(t, "status 400", rows[2][5])
}

func TestContactMessagesWorkbookEmpty(t *testing.T) {
	f, err := NewExportService().ContactMessagesWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Messages")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
