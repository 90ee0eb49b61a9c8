package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/alimgiray/folio/internal/models"
)

var ErrContactMessageNotFound = errors.New("contact message not found")

// ContactMessageRepository handles database operations for contact messages
type ContactMessageRepository struct {
	db *sql.DB
}

// NewContactMessageRepository creates a new ContactMessageRepository
func NewContactMessageRepository(db *sql.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, from_name, from_email, message, status, relay_error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.FromName,
		message.FromEmail,
		message.Message,
		message.Status,
		message.RelayError,
		message.CreatedAt,
		message.UpdatedAt,
	)
	return err
}

// UpdateStatus persists the delivery outcome of a message
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, message *models.ContactMessage) error {
	query := `UPDATE contact_messages SET status = ?, relay_error = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		message.Status,
		message.RelayError,
		message.UpdatedAt,
		message.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}

// GetByID retrieves a contact message by ID
func (r *ContactMessageRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	query := `
		SELECT id, from_name, from_email, message, status, relay_error, created_at, updated_at
		FROM contact_messages WHERE id = ?
	`

	message, err := scanContactMessage(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContactMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return message, nil
}

// List returns the newest messages first, at most limit rows (all when limit <= 0)
func (r *ContactMessageRepository) List(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, from_name, from_email, message, status, relay_error, created_at, updated_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*models.ContactMessage{}
	for rows.Next() {
		message, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	message := &models.ContactMessage{}
	err := row.Scan(
		&message.ID,
		&message.FromName,
		&message.FromEmail,
		&message.Message,
		&message.Status,
		&message.RelayError,
		&message.CreatedAt,
		&message.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}
