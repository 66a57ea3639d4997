package client

import (
	"testing"
	"time"

	"github.com/modelrelay/relay/internal/utils"
)

func newConfiguredClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New("abcdefgh1234", opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// TestNew_EmptyAPIKeyWithoutEnv_ReturnsError verifies the non-empty
// credential invariant at construction.
func TestNew_EmptyAPIKeyWithoutEnv_ReturnsError(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	if _, err := New(""); err == nil {
		t.Fatal("expected error for missing api key, got nil")
	}
}

// TestNew_APIKeyFromEnv_Succeeds verifies the environment fallback.
func TestNew_APIKeyFromEnv_Succeeds(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key-5678")
	c, err := New("")
	if err != nil {
		t.Fatalf("expected env credential to satisfy construction, got %v", err)
	}
	if got := c.APIKeyInfo(); got != "****5678" {
		t.Errorf("expected masked env key, got %q", got)
	}
}

// TestNew_BaseURLFromEnv_ResolvedOnce verifies the environment override is
// read at construction and an explicit option beats it.
func TestNew_BaseURLFromEnv_ResolvedOnce(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://env.example")

	fromEnv := newConfiguredClient(t)
	if got := fromEnv.GetConfig().BaseURL; got != "http://env.example" {
		t.Errorf("expected env base URL, got %q", got)
	}

	explicit := newConfiguredClient(t, WithBaseURL("http://explicit.example"))
	if got := explicit.GetConfig().BaseURL; got != "http://explicit.example" {
		t.Errorf("expected explicit base URL to win, got %q", got)
	}
}

// TestNew_NegativeNumeric_ReturnsError verifies numeric invariants.
func TestNew_NegativeNumeric_ReturnsError(t *testing.T) {
	if _, err := New("key-1234", WithMaxRetries(-1)); err == nil {
		t.Error("expected error for negative retries, got nil")
	}
	if _, err := New("key-1234", WithTimeout(-time.Second)); err == nil {
		t.Error("expected error for negative timeout, got nil")
	}
	if _, err := New("key-1234", WithRetryDelay(-time.Second)); err == nil {
		t.Error("expected error for negative retry delay, got nil")
	}
}

// TestGetConfig_MasksCredential verifies the snapshot never exposes the
// full secret.
func TestGetConfig_MasksCredential(t *testing.T) {
	c := newConfiguredClient(t)
	snapshot := c.GetConfig()
	if snapshot.APIKey != "****1234" {
		t.Errorf("expected masked credential %q, got %q", "****1234", snapshot.APIKey)
	}
	if got := c.APIKeyInfo(); got != "****1234" {
		t.Errorf("expected APIKeyInfo %q, got %q", "****1234", got)
	}
}

// TestGetConfig_Idempotent verifies repeated snapshots without an update
// are equal.
func TestGetConfig_Idempotent(t *testing.T) {
	c := newConfiguredClient(t)
	first := c.GetConfig()
	second := c.GetConfig()
	if first != second {
		t.Errorf("expected equal snapshots, got %+v and %+v", first, second)
	}
}

// TestUpdateConfig_FalsyValuesStillApply verifies that fields explicitly
// set to their zero value are applied: presence is tracked by the pointer,
// not by truthiness.
func TestUpdateConfig_FalsyValuesStillApply(t *testing.T) {
	c := newConfiguredClient(t, WithDebug(true))

	err := c.UpdateConfig(ConfigUpdate{
		Debug:   utils.Ptr(false),
		Timeout: utils.Ptr(time.Duration(0)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := c.GetConfig()
	if snapshot.Debug {
		t.Error("expected debug=false to apply")
	}
	if snapshot.Timeout != 0 {
		t.Errorf("expected timeout=0 to apply, got %s", snapshot.Timeout)
	}
}

// TestUpdateConfig_AbsentFieldsUntouched verifies partial updates leave
// unmentioned fields alone.
func TestUpdateConfig_AbsentFieldsUntouched(t *testing.T) {
	c := newConfiguredClient(t, WithMaxRetries(5), WithRetryDelay(2*time.Second))

	if err := c.UpdateConfig(ConfigUpdate{MaxRetries: utils.Ptr(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := c.GetConfig()
	if snapshot.MaxRetries != 1 {
		t.Errorf("expected max retries updated to 1, got %d", snapshot.MaxRetries)
	}
	if snapshot.RetryDelay != 2*time.Second {
		t.Errorf("expected retry delay untouched, got %s", snapshot.RetryDelay)
	}
}

// TestUpdateConfig_InvalidValues_RejectsWholeUpdate verifies atomicity: a
// bad field leaves the previous configuration fully intact.
func TestUpdateConfig_InvalidValues_RejectsWholeUpdate(t *testing.T) {
	c := newConfiguredClient(t, WithMaxRetries(5))

	err := c.UpdateConfig(ConfigUpdate{
		MaxRetries: utils.Ptr(2),
		Timeout:    utils.Ptr(-time.Second),
	})
	if err == nil {
		t.Fatal("expected error for negative timeout, got nil")
	}
	if got := c.GetConfig().MaxRetries; got != 5 {
		t.Errorf("expected rejected update to leave retries at 5, got %d", got)
	}

	if err := c.UpdateConfig(ConfigUpdate{APIKey: utils.Ptr("")}); err == nil {
		t.Error("expected error for empty credential update, got nil")
	}
}

// TestEffectiveTimeout_Table verifies the smaller-of-override-and-default
// rule, including the zero-means-disabled default.
func TestEffectiveTimeout_Table(t *testing.T) {
	tests := []struct {
		name     string
		def      time.Duration
		override *time.Duration
		expected time.Duration
	}{
		{name: "no override", def: time.Minute, override: nil, expected: time.Minute},
		{name: "smaller override wins", def: time.Minute, override: utils.Ptr(time.Second), expected: time.Second},
		{name: "larger override loses", def: time.Second, override: utils.Ptr(time.Minute), expected: time.Second},
		{name: "disabled default takes override", def: 0, override: utils.Ptr(time.Second), expected: time.Second},
		{name: "disabled default no override", def: 0, override: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveTimeout(tt.def, tt.override); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
