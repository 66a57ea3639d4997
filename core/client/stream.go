package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/modelrelay/relay/core/api"
	"github.com/modelrelay/relay/internal/utils"
	"github.com/modelrelay/relay/providers/observability"
)

// ChatStream sends a chat completion request with streaming enabled and
// returns a lazy sequence of chunks. Streaming is a single attempt: there
// is no retry, and one timeout covers the whole stream. Failure semantics
// differ from Chat:
//
//   - pre-stream failures (validation, connect, a buffered non-SSE error
//     payload) return an error from this method;
//   - a malformed individual event line is logged and skipped, the
//     sequence continues;
//   - a transport failure while reading surfaces as a terminal error on
//     the iterator.
//
// The underlying response body is released on every exit path: normal
// completion, sentinel, terminal error, or the consumer breaking out of
// the loop early.
func (c *Client) ChatStream(ctx context.Context, model string, messages []api.Message, opts *api.ChatOptions) (*api.ChunkStream, error) {
	if err := api.ValidateChatInput(model, messages); err != nil {
		return nil, err
	}

	snap := c.snapshot()
	ctx, logger := c.observerContext(ctx, snap)
	envelope := buildChatEnvelope(snap.APIKey, model, messages, opts, true)
	timeout := effectiveTimeout(snap.Timeout, chatTimeout(opts))

	streamCtx := ctx
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		streamCtx, cancel = context.WithTimeout(ctx, timeout)
	}

	response, err := utils.DoPostStream(streamCtx, c.httpClient, snap.BaseURL+chatCompletionsEndpoint, snap.APIKey, envelope)
	if err != nil {
		cancel()
		return nil, err
	}

	// A non-SSE content type means the server answered with a buffered
	// JSON payload instead of a stream; surface its message and stop.
	if !strings.HasPrefix(response.Header.Get("Content-Type"), utils.ContentTypeEventStream) {
		defer cancel()
		body, readErr := utils.ReadBufferedBody(response.Body)
		if readErr != nil {
			return nil, fmt.Errorf("error reading non-stream response (status %d): %w", response.StatusCode, readErr)
		}
		return nil, bufferedStreamError(response.StatusCode, body)
	}

	sseScanner := utils.NewSSEScanner(response.Body)

	iteratorFunc := func(yield func(api.StreamChunk, error) bool) {
		// Release the connection on every exit path
		defer cancel()
		defer utils.CloseWithLog(response.Body)

		for {
			if streamCtx.Err() != nil {
				yield(api.StreamChunk{}, streamCtx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				// Sentinel or stream end: the sequence finishes normally
				return
			}
			if sseErr != nil {
				yield(api.StreamChunk{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			var chunk api.StreamChunk
			if parseErr := json.Unmarshal([]byte(payload), &chunk); parseErr != nil {
				// Malformed individual events are skippable noise, not fatal
				logger.Warn("skipping malformed stream event",
					observability.String("payload", utils.TruncateString(payload, 200)),
					observability.Error(parseErr),
				)
				continue
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}

	return api.NewChunkStream(iteratorFunc), nil
}

// bufferedStreamError turns a buffered JSON body received in place of an
// event stream into the stream's opening error.
func bufferedStreamError(statusCode int, body []byte) error {
	var envelope api.ResponseEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return fmt.Errorf("stream request failed: %s", envelope.Error.Message)
	}
	return fmt.Errorf("stream request failed (status %d): %s", statusCode, utils.TruncateString(string(body), 200))
}
