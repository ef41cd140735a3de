package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DiscordNotifier handles sending notifications to a Discord webhook.
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(logger zerolog.Logger, httpClient *http.Client) *DiscordNotifier {
	moduleLogger := logger.With().Str("component", "DiscordNotifier").Logger()

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	return &DiscordNotifier{
		logger:     moduleLogger,
		httpClient: httpClient,
	}
}

// SendNotification posts a message payload to the specified webhook URL.
// An empty webhook URL disables the notification silently.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, webhookURL string, payload DiscordMessagePayload) error {
	if webhookURL == "" {
		dn.logger.Debug().Msg("Webhook URL is empty. Skipping Discord notification.")
		return nil
	}

	if _, err := url.ParseRequestURI(webhookURL); err != nil {
		dn.logger.Error().Err(err).Msg("Invalid Discord webhook URL provided for this notification")
		return fmt.Errorf("invalid Discord webhook URL: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		dn.logger.Error().Err(err).Msg("Failed to marshal Discord payload to JSON")
		return fmt.Errorf("failed to marshal discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payloadJSON))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := dn.httpClient.Do(req)
	if err != nil {
		dn.logger.Error().Err(err).Msg("Failed to send Discord notification")
		return fmt.Errorf("failed to send Discord notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		dn.logger.Error().Int("status_code", resp.StatusCode).Str("body", string(body)).Msg("Discord webhook returned non-success status")
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	dn.logger.Debug().Msg("Discord notification sent")
	return nil
}
