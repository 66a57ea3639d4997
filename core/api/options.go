package api

import "time"

// ChatOptions are the optional knobs for a chat completion call. All fields
// are pointers: a nil field means "use the server default" and is omitted
// from the wire payload entirely. Use [github.com/modelrelay/relay/internal/utils.Ptr]
// to set a field from a literal.
type ChatOptions struct {
	// Temperature is the sampling temperature. Zero is a meaningful value
	// and differs from leaving the field unset.
	Temperature *float32

	// MaxTokens caps the generated output length.
	MaxTokens *int

	// Timeout overrides the client's default per-attempt timeout for this
	// call only. Never serialized; the smaller of this and the client
	// default wins.
	Timeout *time.Duration

	// Metadata carries provider compatibility flags and other passthrough
	// fields the aggregator forwards untouched.
	Metadata map[string]any
}

// CompletionOptions are the optional knobs for a legacy text completion
// call. Same presence semantics as [ChatOptions].
type CompletionOptions struct {
	Temperature *float32
	MaxTokens   *int
	Timeout     *time.Duration
	Metadata    map[string]any
}
