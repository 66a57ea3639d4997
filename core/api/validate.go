package api

import "fmt"

// ValidationError reports caller-supplied malformed input. It is returned
// synchronously, before any network activity, and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validRoles is the closed set of accepted message roles.
var validRoles = map[MessageRole]bool{
	RoleSystem:    true,
	RoleUser:      true,
	RoleAssistant: true,
}

// ValidateChatInput checks a model identifier and message list before any
// request is built. Pure function of its inputs; a non-nil return is always
// a *ValidationError.
func ValidateChatInput(model string, messages []Message) error {
	if model == "" {
		return &ValidationError{Field: "model", Reason: "must be a non-empty string"}
	}
	if len(messages) == 0 {
		return &ValidationError{Field: "messages", Reason: "must contain at least one message"}
	}
	for i, msg := range messages {
		if !validRoles[msg.Role] {
			return &ValidationError{
				Field:  fmt.Sprintf("messages[%d].role", i),
				Reason: fmt.Sprintf("%q is not one of system, user, assistant", msg.Role),
			}
		}
		if msg.Content == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("messages[%d].content", i),
				Reason: "must be non-empty",
			}
		}
	}
	return nil
}

// ValidateCompletionInput checks a model identifier and prompt for the
// legacy text completion flow.
func ValidateCompletionInput(model string, prompt string) error {
	if model == "" {
		return &ValidationError{Field: "model", Reason: "must be a non-empty string"}
	}
	if prompt == "" {
		return &ValidationError{Field: "prompt", Reason: "must be non-empty"}
	}
	return nil
}
