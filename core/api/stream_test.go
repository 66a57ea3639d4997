package api

import (
	"errors"
	"testing"
)

func chunkWithContent(id, content string) StreamChunk {
	return StreamChunk{
		ID:      id,
		Model:   "model-x",
		Choices: []ChunkChoice{{Index: 0, Delta: ChunkDelta{Content: content}}},
	}
}

// TestChunkStream_Collect_AccumulatesContentInOrder verifies that Collect
// reassembles content fragments in arrival order into one assistant choice.
func TestChunkStream_Collect_AccumulatesContentInOrder(t *testing.T) {
	finish := "stop"
	stream := NewChunkStream(func(yield func(StreamChunk, error) bool) {
		if !yield(chunkWithContent("1", "Hel"), nil) {
			return
		}
		if !yield(chunkWithContent("1", "lo"), nil) {
			return
		}
		yield(StreamChunk{
			ID:      "1",
			Choices: []ChunkChoice{{Index: 0, FinishReason: &finish}},
		}, nil)
	})

	envelope, err := stream.Collect()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(envelope.Choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(envelope.Choices))
	}
	choice := envelope.Choices[0]
	if choice.Message == nil || choice.Message.Content != "Hello" {
		t.Errorf("expected accumulated content %q, got %+v", "Hello", choice.Message)
	}
	if choice.Message.Role != RoleAssistant {
		t.Errorf("expected assistant role, got %q", choice.Message.Role)
	}
	if choice.FinishReason != "stop" {
		t.Errorf("expected finish reason %q, got %q", "stop", choice.FinishReason)
	}
	if envelope.ID != "1" || envelope.Model != "model-x" {
		t.Errorf("expected identity fields carried over, got id=%q model=%q", envelope.ID, envelope.Model)
	}
}

// TestChunkStream_Collect_MidStreamError_ReturnsPartial verifies that a
// terminal iterator error surfaces alongside the partial accumulation.
func TestChunkStream_Collect_MidStreamError_ReturnsPartial(t *testing.T) {
	streamErr := errors.New("connection reset")
	stream := NewChunkStream(func(yield func(StreamChunk, error) bool) {
		if !yield(chunkWithContent("1", "partial"), nil) {
			return
		}
		yield(StreamChunk{}, streamErr)
	})

	envelope, err := stream.Collect()
	if !errors.Is(err, streamErr) {
		t.Fatalf("expected stream error, got %v", err)
	}
	if got := envelope.Choices[0].Message.Content; got != "partial" {
		t.Errorf("expected partial content %q, got %q", "partial", got)
	}
}

// TestChunkStream_Iter_EarlyBreak_StopsProducer verifies that breaking out
// of the range loop stops the producer (yield returns false).
func TestChunkStream_Iter_EarlyBreak_StopsProducer(t *testing.T) {
	produced := 0
	stream := NewChunkStream(func(yield func(StreamChunk, error) bool) {
		for i := 0; i < 10; i++ {
			produced++
			if !yield(chunkWithContent("1", "x"), nil) {
				return
			}
		}
	})

	consumed := 0
	for range stream.Iter() {
		consumed++
		if consumed == 3 {
			break
		}
	}

	if produced != 3 {
		t.Errorf("expected producer to stop after 3 chunks, produced %d", produced)
	}
}

// TestResponseEnvelope_Content_PrefersChatMessage verifies the content
// accessor across the chat, completion, and error shapes.
func TestResponseEnvelope_Content_PrefersChatMessage(t *testing.T) {
	chat := &ResponseEnvelope{Choices: []Choice{{
		Message: &Message{Role: RoleAssistant, Content: "from message"},
		Text:    "from text",
	}}}
	if got := chat.Content(); got != "from message" {
		t.Errorf("expected chat message content, got %q", got)
	}

	completion := &ResponseEnvelope{Choices: []Choice{{Text: "from text"}}}
	if got := completion.Content(); got != "from text" {
		t.Errorf("expected completion text, got %q", got)
	}

	failed := &ResponseEnvelope{Error: &APIError{Message: "boom"}}
	if got := failed.Content(); got != "" {
		t.Errorf("expected empty content on error envelope, got %q", got)
	}
	if !failed.Failed() {
		t.Error("expected Failed() to report true for error envelope")
	}
}
