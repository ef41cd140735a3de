package notifier

// DiscordMessagePayload is the JSON body posted to a Discord webhook.
type DiscordMessagePayload struct {
	Content string         `json:"content,omitempty"`
	Embeds  []DiscordEmbed `json:"embeds,omitempty"`
}

// DiscordEmbed represents a single embed within a webhook message.
type DiscordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"` // ISO8601
	Fields      []DiscordEmbedField `json:"fields,omitempty"`
}

// DiscordEmbedField is a name/value pair rendered inside an embed.
type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

const (
	embedColorChange  = 0x2ECC71 // green
	embedColorFailure = 0xE74C3C // red
)
