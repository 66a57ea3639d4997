package client

import (
	"time"

	"github.com/modelrelay/relay/core/api"
	"github.com/modelrelay/relay/internal/utils"
)

// buildChatEnvelope assembles the wire payload for a chat call. Option
// fields are copied as pointers: a nil option stays absent from the JSON
// body, so the server applies its own defaults. The credential is embedded
// in the body; the transport layer additionally sends it as a bearer
// header. Deployments differ in which one they read, so both are always
// present.
func buildChatEnvelope(apiKey, model string, messages []api.Message, opts *api.ChatOptions, stream bool) api.RequestEnvelope {
	envelope := api.RequestEnvelope{
		Model:    model,
		Messages: messages,
		APIKey:   apiKey,
	}
	if opts != nil {
		envelope.Temperature = opts.Temperature
		envelope.MaxTokens = opts.MaxTokens
		envelope.Metadata = opts.Metadata
	}
	if stream {
		envelope.Stream = utils.Ptr(true)
	}
	return envelope
}

// buildCompletionEnvelope assembles the wire payload for the legacy
// /completions flow, which carries a prompt string instead of a message
// list.
func buildCompletionEnvelope(apiKey, model, prompt string, opts *api.CompletionOptions) api.RequestEnvelope {
	envelope := api.RequestEnvelope{
		Model:  model,
		Prompt: prompt,
		APIKey: apiKey,
	}
	if opts != nil {
		envelope.Temperature = opts.Temperature
		envelope.MaxTokens = opts.MaxTokens
		envelope.Metadata = opts.Metadata
	}
	return envelope
}

// effectiveTimeout picks the per-attempt deadline: the smaller of the
// option-level override and the client default. A zero client default
// means "no deadline", in which case only an explicit override applies.
func effectiveTimeout(defaultTimeout time.Duration, override *time.Duration) time.Duration {
	if override == nil {
		return defaultTimeout
	}
	if defaultTimeout == 0 || *override < defaultTimeout {
		return *override
	}
	return defaultTimeout
}
