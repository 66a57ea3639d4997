package api

import "encoding/json"

/*
	##### REQUEST SIDE #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// Message represents a single message in a conversation. Messages are
// immutable once constructed; the request builder only reads them.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// RequestEnvelope is the wire payload sent to the completion endpoints.
// It is constructed fresh per call and never reused.
//
// The API key is embedded in the body AND sent as an Authorization bearer
// header. Some ModelRelay deployments authenticate from the header, some
// from the body; sending both is required, not redundant.
//
// Optional fields are pointers so that "unset" is distinguishable from a
// zero value: an unset temperature must not be serialized as 0.
type RequestEnvelope struct {
	Model    string    `json:"model"`
	Prompt   string    `json:"prompt,omitempty"`   // legacy /completions flow
	Messages []Message `json:"messages,omitempty"` // /chat/completions flow
	APIKey   string    `json:"api_key"`

	Temperature *float32       `json:"temperature,omitempty"`
	MaxTokens   *int           `json:"max_tokens,omitempty"`
	Stream      *bool          `json:"stream,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

/*
	##### RESPONSE SIDE #####
*/

// Usage reports token consumption for a completed request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// Choice is a single generated alternative. Chat responses populate
// Message; legacy completion responses populate Text.
type Choice struct {
	Index        int      `json:"index"`
	Message      *Message `json:"message,omitempty"`
	Text         string   `json:"text,omitempty"`
	FinishReason string   `json:"finish_reason,omitempty"`
}

// APIError is the error slot of a ResponseEnvelope. Transport failures are
// normalized into this same shape, so a consumer doing field access cannot
// tell a synthesized error from a server-side one.
type APIError struct {
	Message string          `json:"message"`
	Code    string          `json:"code,omitempty"`
	Type    string          `json:"type,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// ResponseEnvelope is the outer response type for every non-streaming
// operation. Exactly one of the success fields or Error is populated.
// Model catalog lookups return their payload through Data.
type ResponseEnvelope struct {
	ID       string          `json:"id,omitempty"`
	Object   string          `json:"object,omitempty"`
	Created  int64           `json:"created,omitempty"`
	Model    string          `json:"model,omitempty"`
	Provider string          `json:"provider,omitempty"`
	Choices  []Choice        `json:"choices,omitempty"`
	Usage    *Usage          `json:"usage,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`     // catalog payload, passed through opaque
	Metadata json.RawMessage `json:"metadata,omitempty"` // provider-specific block, passed through opaque

	Error *APIError `json:"error,omitempty"`
}

// Failed reports whether the envelope carries an error payload. Presence of
// the Error field is the only failure discriminant; the HTTP status code is
// not consulted.
func (r *ResponseEnvelope) Failed() bool {
	return r != nil && r.Error != nil
}

// Content returns the generated text of the first choice, preferring the
// chat message content over the legacy completion text. Returns "" when the
// envelope has no choices or carries an error.
func (r *ResponseEnvelope) Content() string {
	if r == nil || r.Error != nil || len(r.Choices) == 0 {
		return ""
	}
	first := r.Choices[0]
	if first.Message != nil && first.Message.Content != "" {
		return first.Message.Content
	}
	return first.Text
}

/*
	##### STREAMING #####
*/

// ChunkDelta is the incremental payload of one streamed choice. Role is
// only present on the first chunk of a choice; later chunks carry content
// fragments only.
type ChunkDelta struct {
	Role    MessageRole `json:"role,omitempty"`
	Content string      `json:"content,omitempty"`
}

// ChunkChoice pairs a delta with its choice index. FinishReason is nil
// until the choice is finished.
type ChunkChoice struct {
	Index        int        `json:"index"`
	Delta        ChunkDelta `json:"delta"`
	FinishReason *string    `json:"finish_reason"`
}

// StreamChunk is one incremental unit of a streamed response. Chunks are
// ordered; accumulating Delta.Content in arrival order reconstructs the
// full message.
type StreamChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object,omitempty"`
	Created int64         `json:"created,omitempty"`
	Model   string        `json:"model,omitempty"`
	Choices []ChunkChoice `json:"choices"`
}
