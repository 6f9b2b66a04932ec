package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// WebhookSender posts embed payloads to chat webhooks with backoff
// between attempts. Success is HTTP 200 or 204; anything else,
// including transport errors, triggers a retry.
type WebhookSender struct {
	httpClient  *http.Client
	maxAttempts int
	backoffs    []time.Duration
	logger      *slog.Logger
}

// NewWebhookSender creates a sender. backoffs holds the sleeps between
// attempts and must have maxAttempts-1 entries.
func NewWebhookSender(maxAttempts int, backoffs []time.Duration) *WebhookSender {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &WebhookSender{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		maxAttempts: maxAttempts,
		backoffs:    backoffs,
		logger:      slog.Default().With("component", "webhook-sender"),
	}
}

// Send delivers one payload, retrying on failure. Returns true when a
// webhook accepted the payload. Delivery is at-least-once: a retry may
// fire after the receiver accepted but before the status arrived.
func (s *WebhookSender) Send(ctx context.Context, url string, payload Payload) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Failed to encode webhook payload", "error", err)
		return false
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if s.post(ctx, url, body, attempt) {
			return true
		}
		if attempt < s.maxAttempts && len(s.backoffs) > 0 {
			idx := attempt - 1
			if idx >= len(s.backoffs) {
				idx = len(s.backoffs) - 1
			}
			if !s.wait(ctx, s.backoffs[idx]) {
				return false
			}
		}
	}
	return false
}

func (s *WebhookSender) post(ctx context.Context, url string, body []byte, attempt int) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.logger.Warn("Failed to build webhook request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Webhook request failed",
			"attempt", attempt, "max_attempts", s.maxAttempts, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return true
	}
	s.logger.Warn("Webhook returned error status",
		"status", resp.StatusCode, "attempt", attempt, "max_attempts", s.maxAttempts)
	return false
}

// wait sleeps for the backoff duration, returning false when the
// context is cancelled first.
func (s *WebhookSender) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
