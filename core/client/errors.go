package client

import (
	"context"
	"errors"
	"net"

	"github.com/modelrelay/relay/core/api"
)

// Transport failure codes. These mirror the machine-readable codes the
// server uses in its own error payloads, so a synthesized envelope is
// indistinguishable from a real one.
const (
	errCodeTimeout     = "timeout"
	errTypeTimeout     = "timeout_error"
	errCodeNetwork     = "network_error"
	errTypeClientError = "client_error"
)

// normalizeTransportError converts the last transport failure of an
// exhausted retry loop into a response-shaped error envelope. Timeouts and
// aborts map to the timeout code; everything else is a network error with
// the failure's own message, or a generic fallback when there is none.
func normalizeTransportError(err error) *api.ResponseEnvelope {
	if isTimeout(err) {
		return &api.ResponseEnvelope{
			Error: &api.APIError{
				Message: "Request timeout",
				Code:    errCodeTimeout,
				Type:    errTypeTimeout,
			},
		}
	}

	message := "Network error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &api.ResponseEnvelope{
		Error: &api.APIError{
			Message: message,
			Code:    errCodeNetwork,
			Type:    errTypeClientError,
		},
	}
}

// isTimeout reports whether err is a deadline, cancellation, or other
// timeout-flavored transport failure.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
