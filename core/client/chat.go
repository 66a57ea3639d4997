package client

import (
	"context"
	"net/http"
	"time"

	"github.com/modelrelay/relay/core/api"
)

const (
	chatCompletionsEndpoint = "/chat/completions"
	completionsEndpoint     = "/completions"
	modelsEndpoint          = "/models"
)

// Chat sends a chat completion request. Input problems return a
// *api.ValidationError before any network traffic. After that the call
// always yields an envelope: either the server's verbatim answer (which may
// itself carry an API-level error) or, once retries are exhausted, a
// normalized transport error in the same shape.
func (c *Client) Chat(ctx context.Context, model string, messages []api.Message, opts *api.ChatOptions) (*api.ResponseEnvelope, error) {
	if err := api.ValidateChatInput(model, messages); err != nil {
		return nil, err
	}

	snap := c.snapshot()
	envelope := buildChatEnvelope(snap.APIKey, model, messages, opts, false)
	timeout := effectiveTimeout(snap.Timeout, chatTimeout(opts))

	return c.executeJSON(ctx, snap, chatCompletionsEndpoint, http.MethodPost, envelope, timeout), nil
}

// Complete sends a legacy text completion request through /completions.
// Same retry and error semantics as Chat.
func (c *Client) Complete(ctx context.Context, model string, prompt string, opts *api.CompletionOptions) (*api.ResponseEnvelope, error) {
	if err := api.ValidateCompletionInput(model, prompt); err != nil {
		return nil, err
	}

	snap := c.snapshot()
	envelope := buildCompletionEnvelope(snap.APIKey, model, prompt, opts)
	timeout := effectiveTimeout(snap.Timeout, completionTimeout(opts))

	return c.executeJSON(ctx, snap, completionsEndpoint, http.MethodPost, envelope, timeout), nil
}

func chatTimeout(opts *api.ChatOptions) *time.Duration {
	if opts == nil {
		return nil
	}
	return opts.Timeout
}

func completionTimeout(opts *api.CompletionOptions) *time.Duration {
	if opts == nil {
		return nil
	}
	return opts.Timeout
}
