package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gamedatatrack/internal/config"

	"github.com/rs/zerolog"
)

// ChangeNotification describes one detected content change.
type ChangeNotification struct {
	FileName     string
	URL          string
	OldHash      string
	NewHash      string
	ChangedAt    string
	LinesAdded   int
	LinesDeleted int
}

// NotificationHelper holds the NotificationConfig and builds the payloads the
// tracker sends. Notification failures are logged, never propagated; a broken
// webhook must not fail a tracking run.
type NotificationHelper struct {
	notifier *DiscordNotifier
	cfg      config.NotificationConfig
	logger   zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(notifier *DiscordNotifier, cfg config.NotificationConfig, logger zerolog.Logger) *NotificationHelper {
	return &NotificationHelper{
		notifier: notifier,
		cfg:      cfg,
		logger:   logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// NotifyChange sends a notification for a detected content change.
func (nh *NotificationHelper) NotifyChange(ctx context.Context, change ChangeNotification) {
	if !nh.cfg.NotifyOnChange {
		return
	}

	shortOld := shortHash(change.OldHash)
	if shortOld == "" {
		shortOld = "none"
	}

	payload := DiscordMessagePayload{
		Content: nh.mentionContent(),
		Embeds: []DiscordEmbed{
			{
				Title:       fmt.Sprintf("Gamedata change detected: %s", change.FileName),
				Description: fmt.Sprintf("`%s` -> `%s`", shortOld, shortHash(change.NewHash)),
				Color:       embedColorChange,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
				Fields: []DiscordEmbedField{
					{Name: "URL", Value: change.URL},
					{Name: "Detected", Value: change.ChangedAt, Inline: true},
					{Name: "Lines", Value: fmt.Sprintf("+%d / -%d", change.LinesAdded, change.LinesDeleted), Inline: true},
				},
			},
		},
	}

	if err := nh.notifier.SendNotification(ctx, nh.cfg.DiscordWebhookURL, payload); err != nil {
		nh.logger.Error().Err(err).Str("file", change.FileName).Msg("Failed to send change notification")
	}
}

// NotifyRunFailure sends a notification when one or more checks failed.
func (nh *NotificationHelper) NotifyRunFailure(ctx context.Context, errorMessages []string) {
	if !nh.cfg.NotifyOnFailure || len(errorMessages) == 0 {
		return
	}

	payload := DiscordMessagePayload{
		Content: nh.mentionContent(),
		Embeds: []DiscordEmbed{
			{
				Title:       "Gamedata tracking run failed",
				Description: strings.Join(errorMessages, "\n"),
				Color:       embedColorFailure,
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	if err := nh.notifier.SendNotification(ctx, nh.cfg.DiscordWebhookURL, payload); err != nil {
		nh.logger.Error().Err(err).Msg("Failed to send run failure notification")
	}
}

// mentionContent builds the role mention prefix, if any roles are configured.
func (nh *NotificationHelper) mentionContent() string {
	if len(nh.cfg.MentionRoleIDs) == 0 {
		return ""
	}
	mentions := make([]string, 0, len(nh.cfg.MentionRoleIDs))
	for _, roleID := range nh.cfg.MentionRoleIDs {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", roleID))
	}
	return strings.Join(mentions, " ")
}

// shortHash truncates a content hash for display.
func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
