// Package client is the minimal ModelRelay surface: one constructor, text
// in, text out. It wraps the configurable core client with its defaults and
// flattens the envelope handling; anything beyond that (retry tuning,
// streaming, catalog access) lives in core/client.
package client

import (
	"context"
	"fmt"

	"github.com/modelrelay/relay/core/api"
	coreclient "github.com/modelrelay/relay/core/client"
)

// Client is a fixed-model convenience wrapper around the core client.
type Client struct {
	core  *coreclient.Client
	model string
}

// New creates a minimal client for one model. The apiKey may be empty if
// MODELRELAY_API_KEY is set.
func New(apiKey string, model string) (*Client, error) {
	core, err := coreclient.New(apiKey)
	if err != nil {
		return nil, err
	}
	return &Client{core: core, model: model}, nil
}

// Chat sends a single user message and returns the generated reply text.
// API-level failures come back as an error here, the minimal surface
// trades the envelope's error slot for plain Go error handling.
func (c *Client) Chat(ctx context.Context, content string) (string, error) {
	messages := []api.Message{{Role: api.RoleUser, Content: content}}
	envelope, err := c.core.Chat(ctx, c.model, messages, nil)
	if err != nil {
		return "", err
	}
	if envelope.Failed() {
		return "", fmt.Errorf("chat failed: %s", envelope.Error.Message)
	}
	return envelope.Content(), nil
}

// Complete sends a prompt through the legacy completion flow and returns
// the generated text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	envelope, err := c.core.Complete(ctx, c.model, prompt, nil)
	if err != nil {
		return "", err
	}
	if envelope.Failed() {
		return "", fmt.Errorf("completion failed: %s", envelope.Error.Message)
	}
	return envelope.Content(), nil
}
