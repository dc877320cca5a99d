// File: services/mail/mail.go
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"haulify/config"
	"haulify/models"
)

// Service delivers transactional and marketing email.
type Service interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}

// HTTPMailService posts messages to the mail-delivery provider's JSON API.
type HTTPMailService struct {
	Client   *http.Client
	Endpoint string
	APIKey   string
	Sender   string
}

const defaultEndpoint = "https://api.mailchannel.io/v1/send"

// NewHTTPMailService builds a sender using the configured credentials.
func NewHTTPMailService() *HTTPMailService {
	return &HTTPMailService{
		Client:   http.DefaultClient,
		Endpoint: defaultEndpoint,
		APIKey:   config.AppConfig.MailAPIKey,
		Sender:   config.AppConfig.MailSender,
	}
}

func (s *HTTPMailService) Send(ctx context.Context, msg models.EmailMessage) error {
	if s.APIKey == "" {
		return fmt.Errorf("missing mail API key")
	}
	if msg.To == "" {
		return fmt.Errorf("missing recipient")
	}

	payload := map[string]any{
		"from":    s.Sender,
		"to":      msg.To,
		"subject": msg.Subject,
	}
	if msg.HTML {
		payload["html"] = msg.Body
	} else {
		payload["text"] = msg.Body
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("mail delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail delivery returned status %d", resp.StatusCode)
	}
	return nil
}
