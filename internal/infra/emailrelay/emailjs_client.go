// Package emailrelay sends customer emails through the EmailJS REST API.
package emailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shiptrack/config"
	"shiptrack/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint  = "https://api.emailjs.com/api/v1.0/email/send"
	defaultFromEmail = "info@ssdtechnicianlab.com"
	defaultFromName  = "JP Logistics"
	defaultTimeout   = 10 * time.Second
)

type emailJSClient struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	fromEmail  string
	fromName   string
	httpClient *http.Client
	logger     *slog.Logger
}

// sendRequest is the EmailJS send payload.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJSClient creates the relay client. A nil or partial config yields a
// client that reports itself unconfigured.
func NewEmailJSClient(cfg *config.Config, logger *slog.Logger) service.NotificationService {
	client := &emailJSClient{
		endpoint:   defaultEndpoint,
		fromEmail:  defaultFromEmail,
		fromName:   defaultFromName,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}

	relay := cfg.EmailRelay
	if relay == nil {
		return client
	}

	client.serviceID = strings.TrimSpace(relay.ServiceID)
	client.templateID = strings.TrimSpace(relay.TemplateID)
	client.publicKey = strings.TrimSpace(relay.PublicKey)
	client.privateKey = strings.TrimSpace(relay.PrivateKey)
	if relay.Endpoint != "" {
		client.endpoint = relay.Endpoint
	}
	if relay.FromEmail != "" {
		client.fromEmail = relay.FromEmail
	}
	if relay.FromName != "" {
		client.fromName = relay.FromName
	}
	if relay.Timeout > 0 {
		client.httpClient.Timeout = relay.Timeout
	}

	return client
}

// Configured reports whether service, template and public key are all set.
func (c *emailJSClient) Configured() bool {
	return c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

// Send posts one templated message to the relay.
func (c *emailJSClient) Send(ctx context.Context, msg *service.RelayMessage) error {
	if !c.Configured() {
		return errors.New("email relay is not configured")
	}

	toName := msg.ToName
	if toName == "" {
		toName = "Customer"
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:   c.serviceID,
		TemplateID:  c.templateID,
		UserID:      c.publicKey,
		AccessToken: c.privateKey,
		TemplateParams: map[string]string{
			"subject":         msg.Subject,
			"message":         msg.Body,
			"tracking_number": msg.Tracking,
			"tracking_link":   msg.TrackLink,
			"from_email":      c.fromEmail,
			"from_name":       c.fromName,
			"reply_to":        c.fromEmail,
			"to_email":        msg.To,
			"to":              msg.To,
			"to_name":         toName,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "email relay request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("email relay returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	c.logger.Debug("[EmailRelay] Message accepted",
		slog.String("tracking_number", msg.Tracking),
		slog.String("to", msg.To),
	)

	return nil
}
