package client

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/modelrelay/relay/providers/observability"
	"github.com/modelrelay/relay/providers/observability/slogobs"
)

// Client is a configurable ModelRelay API client. It is safe for concurrent
// use: configuration reads are snapshot copies and the config is the only
// shared mutable state.
type Client struct {
	mu         sync.RWMutex
	cfg        Config
	httpClient *http.Client
	logger     observability.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the default (or environment-resolved) base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.cfg.BaseURL = baseURL }
}

// WithTimeout sets the default per-attempt timeout. Zero disables the
// attempt deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.cfg.Timeout = timeout }
}

// WithMaxRetries sets how many times a failed attempt is retried.
func WithMaxRetries(maxRetries int) Option {
	return func(c *Client) { c.cfg.MaxRetries = maxRetries }
}

// WithRetryDelay sets the base backoff delay between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) { c.cfg.RetryDelay = delay }
}

// WithDebug enables per-attempt diagnostic logging.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.cfg.Debug = debug }
}

// WithHTTPClient sets the HTTP client used for outbound requests. The
// client's Timeout field should stay zero; attempt deadlines are enforced
// via context.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger sets the diagnostic sink used when debug is enabled.
func WithLogger(logger observability.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client. The credential comes from apiKey, falling back to
// the MODELRELAY_API_KEY environment variable; construction fails if both
// are empty. The base URL is resolved once here: explicit option, then
// MODELRELAY_BASE_URL, then the hosted default.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}

	c := &Client{
		cfg: Config{
			APIKey:     apiKey,
			BaseURL:    resolveBaseURL(),
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
			RetryDelay: DefaultRetryDelay,
		},
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slogobs.New()
	}

	if err := c.cfg.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// observerContext attaches the diagnostic sink to ctx when debug is
// enabled, so the HTTP helpers pick it up. With debug off the context is
// returned unchanged and the executors log to a no-op sink, diagnostics
// never alter control flow either way.
func (c *Client) observerContext(ctx context.Context, snap Config) (context.Context, observability.Logger) {
	if !snap.Debug {
		return ctx, observability.Nop()
	}
	return observability.ContextWithObserver(ctx, c.logger), c.logger
}
