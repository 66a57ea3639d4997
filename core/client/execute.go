package client

import (
	"context"
	"time"

	"github.com/modelrelay/relay/core/api"
	"github.com/modelrelay/relay/internal/utils"
	"github.com/modelrelay/relay/providers/observability"
)

// execute runs the retry-orchestrated attempt loop for buffered JSON
// exchanges. Per attempt: one HTTP round-trip bounded by timeout. Any
// parseable JSON body (whatever the HTTP status) is the terminal answer
// and is returned verbatim; the server encodes its own failures inside the
// payload. Only transport failures (connect, timeout/abort, parse) trigger
// a retry, waiting RetryDelay*(attempt+1) between attempts, a linear ramp
// rather than an exponential one.
//
// execute never returns a Go error: when the last attempt fails the
// transport error is normalized into the envelope's Error slot.
func (c *Client) execute(ctx context.Context, snap Config, logger observability.Logger, method, url string, body any, timeout time.Duration) *api.ResponseEnvelope {
	maxAttempts := snap.MaxRetries + 1
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		envelope, err := c.attempt(ctx, method, url, snap.APIKey, body, timeout)
		if err == nil {
			logger.Debug("request attempt succeeded",
				observability.String(observability.AttrHTTPURL, url),
				observability.Int(observability.AttrRelayAttempt, attempt+1),
			)
			return envelope
		}
		lastErr = err

		logger.Debug("request attempt failed",
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrRelayAttempt, attempt+1),
			observability.Int(observability.AttrRelayMaxAttempts, maxAttempts),
			observability.Error(err),
		)

		if attempt == maxAttempts-1 {
			break
		}

		backoff := snap.RetryDelay * time.Duration(attempt+1)
		logger.Debug("backing off before retry",
			observability.Duration(observability.AttrRelayBackoff, backoff),
		)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return normalizeTransportError(ctx.Err())
		}
	}

	return normalizeTransportError(lastErr)
}

// attempt performs one HTTP exchange with its own deadline. The deadline
// is scoped to this attempt only: its cancellation aborts the in-flight
// request without touching the caller's context.
func (c *Client) attempt(ctx context.Context, method, url, apiKey string, body any, timeout time.Duration) (*api.ResponseEnvelope, error) {
	attemptCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	_, envelope, err := utils.DoJSON[api.ResponseEnvelope](attemptCtx, c.httpClient, method, url, apiKey, body)
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

// executeJSON is the shared entry used by the public non-streaming
// operations: snapshot-driven, method-agnostic, nil body allowed for GETs.
func (c *Client) executeJSON(ctx context.Context, snap Config, path string, method string, body any, timeout time.Duration) *api.ResponseEnvelope {
	ctx, logger := c.observerContext(ctx, snap)
	timer := utils.NewTimer()
	envelope := c.execute(ctx, snap, logger, method, snap.BaseURL+path, body, timeout)
	timer.Stop()
	logger.Debug("request finished",
		observability.String(observability.AttrHTTPMethod, method),
		observability.String(observability.AttrHTTPURL, snap.BaseURL+path),
		observability.Bool("relay.failed", envelope.Failed()),
		observability.Duration(observability.AttrHTTPDuration, timer.GetDuration()),
	)
	return envelope
}
