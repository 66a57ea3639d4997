package client

import (
	"fmt"
	"os"
	"time"

	"github.com/modelrelay/relay/internal/utils"
)

const (
	// DefaultBaseURL is the hosted ModelRelay endpoint used when neither an
	// explicit option nor the environment overrides it.
	DefaultBaseURL = "https://api.modelrelay.ai/api/v1"

	// DefaultTimeout bounds each individual attempt, not the whole call.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base backoff delay; attempt n waits
	// DefaultRetryDelay * (n+1).
	DefaultRetryDelay = 1 * time.Second

	// EnvAPIKey supplies the credential when the caller does not pass one.
	EnvAPIKey = "MODELRELAY_API_KEY"

	// EnvBaseURL overrides the default base URL. Read once at construction,
	// never re-read per call.
	EnvBaseURL = "MODELRELAY_BASE_URL"
)

// Config holds the mutable client settings. The client owns its Config
// exclusively; executors snapshot it once at call entry so an UpdateConfig
// racing an in-flight call can never produce torn reads across retries.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration // per-attempt; 0 disables the attempt deadline
	MaxRetries int
	RetryDelay time.Duration
	Debug      bool
}

// validate enforces the Config invariants: non-empty credential and
// non-negative numeric fields.
func (cfg Config) validate() error {
	if cfg.APIKey == "" {
		return fmt.Errorf("api key is required: pass one to New or set %s", EnvAPIKey)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s", cfg.Timeout)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max retries must be non-negative, got %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got %s", cfg.RetryDelay)
	}
	return nil
}

// resolveBaseURL returns the environment override if present, otherwise the
// literal default. Called once at construction.
func resolveBaseURL() string {
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		return baseURL
	}
	return DefaultBaseURL
}

// ConfigUpdate is a partial configuration change. Only non-nil fields are
// applied, so a field explicitly set to its zero value (Debug=false,
// Timeout=0) still takes effect, presence is tracked by the pointer, not
// by truthiness.
type ConfigUpdate struct {
	APIKey     *string
	BaseURL    *string
	Timeout    *time.Duration
	MaxRetries *int
	RetryDelay *time.Duration
	Debug      *bool
}

// ConfigSnapshot is the read view returned by GetConfig. The credential is
// masked; everything else is a plain copy.
type ConfigSnapshot struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Debug      bool
}

// GetConfig returns a snapshot of the current configuration with the
// credential masked. Repeated calls without an intervening UpdateConfig
// return equal snapshots.
func (c *Client) GetConfig() ConfigSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return ConfigSnapshot{
		APIKey:     utils.MaskSecret(c.cfg.APIKey),
		BaseURL:    c.cfg.BaseURL,
		Timeout:    c.cfg.Timeout,
		MaxRetries: c.cfg.MaxRetries,
		RetryDelay: c.cfg.RetryDelay,
		Debug:      c.cfg.Debug,
	}
}

// APIKeyInfo returns the masked credential, e.g. "****1234", or "not set".
func (c *Client) APIKeyInfo() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return utils.MaskSecret(c.cfg.APIKey)
}

// UpdateConfig applies the fields present in update to the live
// configuration. Calls already in flight are unaffected; they captured
// their settings at entry. Invalid values (empty credential, negative
// numerics) reject the whole update.
func (c *Client) UpdateConfig(update ConfigUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.cfg
	if update.APIKey != nil {
		next.APIKey = *update.APIKey
	}
	if update.BaseURL != nil {
		next.BaseURL = *update.BaseURL
	}
	if update.Timeout != nil {
		next.Timeout = *update.Timeout
	}
	if update.MaxRetries != nil {
		next.MaxRetries = *update.MaxRetries
	}
	if update.RetryDelay != nil {
		next.RetryDelay = *update.RetryDelay
	}
	if update.Debug != nil {
		next.Debug = *update.Debug
	}
	if err := next.validate(); err != nil {
		return fmt.Errorf("invalid config update: %w", err)
	}
	c.cfg = next
	return nil
}

// snapshot copies the full configuration, unmasked, for internal use by the
// executors. All per-call settings come from one snapshot.
func (c *Client) snapshot() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}
