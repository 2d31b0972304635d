package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notification is the payload posted to the configured webhook.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Client sends notifications to the operator's webhook endpoint.
type Client interface {
	Send(ctx context.Context, n Notification) error
}

// WebhookClient is a resty-backed webhook notifier.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewClient builds a notifier posting to the given webhook URL.
func NewClient(webhookURL string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: webhookURL,
	}
}

// Send posts the notification as JSON.
func (c *WebhookClient) Send(ctx context.Context, n Notification) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(n).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notify webhook error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
