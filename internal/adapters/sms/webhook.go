package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ravepayments/internal/domain"
)

// payload is the JSON body the webhook expects, compatible with an n8n
// SMS workflow.
type payload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type webhookSender struct {
	client     *http.Client
	webhookURL string
}

// NewWebhookSender returns an SMSSender that POSTs {phone, message} JSON to
// the given webhook URL. An empty URL yields a sender that logs and drops
// every message, so SMS can stay unconfigured in local runs.
func NewWebhookSender(client *http.Client, webhookURL string) domain.SMSSender {
	if webhookURL == "" {
		return &noopSender{}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &webhookSender{client: client, webhookURL: webhookURL}
}

func (s *webhookSender) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(payload{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("failed to encode sms payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call sms webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms webhook returned status: %d", resp.StatusCode)
	}
	return nil
}

type noopSender struct{}

func (n *noopSender) Send(ctx context.Context, phone, message string) error {
	log.Printf("[SMS] No webhook configured, dropping message to=%s", phone)
	return nil
}
