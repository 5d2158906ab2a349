// Package notify implements the templated-email gateway client behind the
// Notifier port.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const sendEmailPath = "/v2/notifications/email"

// Client talks to the notification gateway.  One call sends one templated
// email; batching and retry policy belong to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logging.Logger
}

// NewClient constructs a Client from cfg.
func NewClient(cfg config.NotifyConfig, logger logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.Named("notify.client"),
	}
}

type sendEmailRequest struct {
	EmailAddress    string            `json:"email_address"`
	TemplateID      string            `json:"template_id"`
	Personalisation map[string]string `json:"personalisation,omitempty"`
	Reference       string            `json:"reference"`
}

type gatewayError struct {
	Errors []struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	} `json:"errors"`
}

// SendEmail posts one templated email to the gateway.
func (c *Client) SendEmail(ctx context.Context, recipient, templateID string, parameters map[string]string, reference string) error {
	if recipient == "" {
		return errors.New(errors.ErrCodeRecipientMissing, "recipient email is required")
	}
	if templateID == "" {
		return errors.New(errors.ErrCodeTemplateUnresolved, "template id is required")
	}

	payload, err := json.Marshal(sendEmailRequest{
		EmailAddress:    recipient,
		TemplateID:      templateID,
		Personalisation: parameters,
		Reference:       reference,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendEmailPath, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDispatchFailed, "build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeNotifierUnavailable, "send email via gateway")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Debug("email dispatched",
			logging.String("template", templateID),
			logging.String("reference", reference))
		return nil
	}

	detail := readGatewayError(resp.Body)
	return errors.New(errors.ErrCodeDispatchFailed,
		"gateway returned "+resp.Status).WithDetail(detail)
}

func readGatewayError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 8192))
	if err != nil {
		return ""
	}
	var ge gatewayError
	if err := json.Unmarshal(raw, &ge); err == nil && len(ge.Errors) > 0 {
		return ge.Errors[0].Message
	}
	return string(raw)
}
