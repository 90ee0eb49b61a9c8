package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/config"
)

var (
	ErrRelayNotConfigured = errors.New("email relay is not configured")
	ErrRelayFailed        = errors.New("email relay rejected the message")
)

// EmailJSRelay talks to an EmailJS-compatible send endpoint
type EmailJSRelay struct {
	cfg        config.EmailConfig
	httpClient *http.Client
}

type emailJSRequest struct {
	ServiceID      string              `json:"service_id"`
	TemplateID     string              `json:"template_id"`
	UserID         string              `json:"user_id"`
	AccessToken    string              `json:"accessToken,omitempty"`
	TemplateParams models.EmailPayload `json:"template_params"`
}

func NewEmailJSRelay(cfg config.EmailConfig, httpClient *http.Client) *EmailJSRelay {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &EmailJSRelay{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// Send posts the payload once; there is no retry
func (r *EmailJSRelay) Send(ctx context.Context, payload models.EmailPayload) error {
	if !r.cfg.Configured() {
		return ErrRelayNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      r.cfg.ServiceID,
		TemplateID:     r.cfg.TemplateID,
		UserID:         r.cfg.PublicKey,
		AccessToken:    r.cfg.PrivateKey,
		TemplateParams: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRelayFailed, resp.StatusCode, bytes.TrimSpace(detail))
	}

	return nil
}
