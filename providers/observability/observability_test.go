package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestAttributeConstructors verifies each constructor carries its key and
// value through.
func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name          string
		attr          Attribute
		expectedKey   string
		expectedValue interface{}
	}{
		{name: "string", attr: String("k", "v"), expectedKey: "k", expectedValue: "v"},
		{name: "int", attr: Int("n", 3), expectedKey: "n", expectedValue: 3},
		{name: "int64", attr: Int64("n64", int64(9)), expectedKey: "n64", expectedValue: int64(9)},
		{name: "bool", attr: Bool("ok", true), expectedKey: "ok", expectedValue: true},
		{name: "duration", attr: Duration("d", time.Second), expectedKey: "d", expectedValue: time.Second},
		{name: "error", attr: Error(errors.New("boom")), expectedKey: "error", expectedValue: "boom"},
		{name: "nil error", attr: Error(nil), expectedKey: "error", expectedValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.expectedKey {
				t.Errorf("expected key %q, got %q", tt.expectedKey, tt.attr.Key)
			}
			if tt.attr.Value != tt.expectedValue {
				t.Errorf("expected value %v, got %v", tt.expectedValue, tt.attr.Value)
			}
		})
	}
}

// TestObserverContext_RoundTrip verifies attaching and extracting a logger.
func TestObserverContext_RoundTrip(t *testing.T) {
	logger := Nop()
	ctx := ContextWithObserver(context.Background(), logger)
	if got := ObserverFromContext(ctx); got != logger {
		t.Error("expected the attached logger back")
	}
}

// TestObserverFromContext_Absent_ReturnsNil verifies a bare context yields
// nil rather than panicking.
func TestObserverFromContext_Absent_ReturnsNil(t *testing.T) {
	if got := ObserverFromContext(context.Background()); got != nil {
		t.Errorf("expected nil for bare context, got %v", got)
	}
	if got := ObserverFromContext(nil); got != nil {
		t.Errorf("expected nil for nil context, got %v", got)
	}
}

// TestNop_DiscardsWithoutPanic verifies the no-op sink accepts every level.
func TestNop_DiscardsWithoutPanic(t *testing.T) {
	logger := Nop()
	logger.Debug("d", String("k", "v"))
	logger.Info("i")
	logger.Warn("w", Int("n", 1))
	logger.Error("e", Error(errors.New("x")))
}
