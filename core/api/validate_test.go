package api

import (
	"errors"
	"testing"
)

// TestValidateChatInput_ValidInput_ReturnsNil verifies that a well-formed
// model and message list pass validation.
func TestValidateChatInput_ValidInput_ReturnsNil(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "be brief"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}
	if err := ValidateChatInput("model-x", messages); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

// TestValidateChatInput_MalformedInput_ReturnsValidationError runs the
// malformed-input table: every case must fail with a *ValidationError.
func TestValidateChatInput_MalformedInput_ReturnsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		messages []Message
	}{
		{
			name:     "empty model",
			model:    "",
			messages: []Message{{Role: RoleUser, Content: "hi"}},
		},
		{
			name:     "nil message list",
			model:    "model-x",
			messages: nil,
		},
		{
			name:     "empty message list",
			model:    "model-x",
			messages: []Message{},
		},
		{
			name:     "unknown role",
			model:    "model-x",
			messages: []Message{{Role: "tool", Content: "output"}},
		},
		{
			name:     "empty role",
			model:    "model-x",
			messages: []Message{{Role: "", Content: "hi"}},
		},
		{
			name:     "empty content",
			model:    "model-x",
			messages: []Message{{Role: RoleUser, Content: ""}},
		},
		{
			name:  "later message invalid",
			model: "model-x",
			messages: []Message{
				{Role: RoleUser, Content: "hi"},
				{Role: RoleAssistant, Content: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChatInput(tt.model, tt.messages)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
}

// TestValidateCompletionInput_Table checks the prompt-based flow.
func TestValidateCompletionInput_Table(t *testing.T) {
	if err := ValidateCompletionInput("model-x", "tell me a story"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := ValidateCompletionInput("", "prompt"); err == nil {
		t.Error("expected error for empty model, got nil")
	}
	if err := ValidateCompletionInput("model-x", ""); err == nil {
		t.Error("expected error for empty prompt, got nil")
	}
}

// TestValidationError_Error_MentionsField verifies the message names the
// offending field so callers can report it.
func TestValidationError_Error_MentionsField(t *testing.T) {
	err := ValidateChatInput("", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := err.Error(); got != "invalid model: must be a non-empty string" {
		t.Errorf("unexpected error message: %q", got)
	}
}
