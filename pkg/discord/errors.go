package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord: webhook ID and token are required")
	errUnexpectedCode  = errors.New("discord: unexpected response status")
)
