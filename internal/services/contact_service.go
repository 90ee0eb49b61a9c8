package services

import (
	"context"
	"errors"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/config"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrContactIncomplete = errors.New("contact form has a blank field")

//go:generate mockgen -source=contact_service.go -destination=../mocks/mock_contact.go -package=mocks

// EmailRelay forwards a contact message to a transactional email API
type EmailRelay interface {
	Send(ctx context.Context, payload models.EmailPayload) error
}

// ContactStore persists contact messages
type ContactStore interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	UpdateStatus(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context, limit int) ([]*models.ContactMessage, error)
}

type ContactService struct {
	store ContactStore
	relay EmailRelay
	cfg   config.EmailConfig
	log   *logrus.Entry
}

func NewContactService(store ContactStore, relay EmailRelay, cfg config.EmailConfig) *ContactService {
	return &ContactService{
		store: store,
		relay: relay,
		cfg:   cfg,
		log:   logger.Component("contact"),
	}
}

// Submit records the message and forwards it to the relay.
// Storage failures are logged; only the relay outcome is returned.
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm) (*models.ContactMessage, error) {
	if form.HasBlankField() {
		return nil, ErrContactIncomplete
	}

	message := models.NewContactMessage(form)
	log := s.log.WithField("message_id", message.ID)

	stored := true
	if err := s.store.Create(ctx, message); err != nil {
		log.WithError(err).Error("Failed to store contact message")
		stored = false
	}

	relayErr := s.relay.Send(ctx, models.EmailPayload{
		FromName:  message.FromName,
		FromEmail: message.FromEmail,
		Message:   message.Message,
		ToName:    s.cfg.ToName,
		ToEmail:   s.cfg.ToEmail,
	})
	if relayErr != nil {
		message.MarkFailed(relayErr.Error())
		log.WithError(relayErr).Warn("Email relay failed")
	} else {
		message.MarkSent()
		log.Info("Contact message relayed")
	}

	if stored {
		if err := s.store.UpdateStatus(ctx, message); err != nil {
			log.WithError(err).Error("Failed to update contact message status")
		}
	}

	return message, relayErr
}

// RecentMessages lists stored messages, newest first
func (s *ContactService) RecentMessages(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	return s.store.List(ctx, limit)
}
