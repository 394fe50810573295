// Package mailer delivers the report through the EmailJS HTTP API.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"convreport/internal/config"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Payload is the provider's send envelope.
type Payload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken"`
	TemplateParams TemplateParams `json:"template_params"`
}

// TemplateParams carries the sender metadata and the report body. The
// provider template embeds Message as one opaque string.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email,omitempty"`
}

// Mailer sends reports through the provider endpoint.
type Mailer struct {
	client HTTPClient
	cfg    *config.Config
}

// New creates a Mailer with the given HTTP client.
func New(client HTTPClient, cfg *config.Config) *Mailer {
	return &Mailer{client: client, cfg: cfg}
}

// Send submits one report as a single POST and blocks for the response.
// Only a 200 or 201 status counts as delivered; any other status or a
// transport error fails the run, and there is no retry.
func (m *Mailer) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(Payload{
		ServiceID:   m.cfg.ServiceID,
		TemplateID:  m.cfg.TemplateID,
		UserID:      m.cfg.UserID,
		AccessToken: m.cfg.AccessToken,
		TemplateParams: TemplateParams{
			FromName:  m.cfg.FromName,
			FromEmail: m.cfg.FromEmail,
			Phone:     m.cfg.Phone,
			Company:   m.cfg.Company,
			Message:   message,
			ToEmail:   m.cfg.ToEmail,
		},
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(body))

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}
	return nil
}
