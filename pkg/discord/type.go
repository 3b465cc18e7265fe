package discord

import (
	"net/http"
	"time"

	"voice-srv/pkg/log"
)

// Config holds timeouts and limits for the webhook client.
type Config struct {
	Timeout       time.Duration
	MaxContentLen int
}

// DefaultConfig returns the default webhook client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:       10 * time.Second,
		MaxContentLen: 2000, // Discord message content limit
	}
}

// discordImpl implements IDiscord over the webhook HTTP API.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// webhookPayload is the body for webhook execution requests.
type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed colors.
const (
	colorRed    = 0xE74C3C
	colorYellow = 0xF1C40F
	colorBlue   = 0x3498DB
)
