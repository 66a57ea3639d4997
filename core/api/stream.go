package api

import (
	"iter"
	"strings"
)

// ChunkStream is a lazy, finite, non-restartable sequence of StreamChunk.
// It supports range-based iteration for real-time token processing and a
// convenience Collect() method for callers who want the complete response.
//
// Important: callers must consume the stream, either by iterating with
// Iter() (including breaking out of the loop early) or by calling
// Collect(). The producer holds an open HTTP response body that is only
// released when the iterator completes or is abandoned via a loop break.
// Constructing a ChunkStream and never iterating it will leak the
// connection.
type ChunkStream struct {
	iterator iter.Seq2[StreamChunk, error]
}

// NewChunkStream creates a ChunkStream from a raw streaming iterator.
// The iterator yields StreamChunk values (with nil error) for normal
// deltas, and may yield a non-nil error to signal a terminal mid-stream
// failure. After an error the sequence ends.
func NewChunkStream(iterator iter.Seq2[StreamChunk, error]) *ChunkStream {
	return &ChunkStream{iterator: iterator}
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
// Example:
//
//	for chunk, err := range stream.Iter() {
//	    if err != nil { handle error }
//	    fmt.Print(chunk.Choices[0].Delta.Content)
//	}
func (stream *ChunkStream) Iter() iter.Seq2[StreamChunk, error] {
	return stream.iterator
}

// Collect consumes the entire stream and assembles the accumulated deltas
// into a ResponseEnvelope with a single assistant choice. A mid-stream
// error terminates collection and returns the partial envelope with the
// error.
func (stream *ChunkStream) Collect() (*ResponseEnvelope, error) {
	var content strings.Builder
	var finishReason string
	envelope := &ResponseEnvelope{Object: "chat.completion"}

	for chunk, err := range stream.iterator {
		if err != nil {
			envelope.Choices = collectedChoices(content.String(), finishReason)
			return envelope, err
		}

		// Identity fields repeat on every chunk; the last one wins.
		if chunk.ID != "" {
			envelope.ID = chunk.ID
		}
		if chunk.Model != "" {
			envelope.Model = chunk.Model
		}
		if chunk.Created != 0 {
			envelope.Created = chunk.Created
		}

		for _, choice := range chunk.Choices {
			content.WriteString(choice.Delta.Content)
			if choice.FinishReason != nil && *choice.FinishReason != "" {
				finishReason = *choice.FinishReason
			}
		}
	}

	envelope.Choices = collectedChoices(content.String(), finishReason)
	return envelope, nil
}

func collectedChoices(content, finishReason string) []Choice {
	return []Choice{{
		Index:        0,
		Message:      &Message{Role: RoleAssistant, Content: content},
		FinishReason: finishReason,
	}}
}
