package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelrelay/relay/providers/observability"
)

// UserAgent identifies the SDK on every outbound request.
const UserAgent = "relay-go/0.2.0"

// maxResponseBodySize is the maximum response body size (10 MB). Enforced via
// io.LimitReader to prevent unbounded memory allocation from rogue responses.
const maxResponseBodySize int64 = 10 * 1024 * 1024

// HeaderOption is an additional header applied to an outbound request,
// after the defaults, so it can override them.
type HeaderOption struct {
	Key   string
	Value string
}

// CloseWithLog closes body and logs a warning on failure. Close errors must
// never override the primary error of the surrounding operation, so they
// are only logged.
func CloseWithLog(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}

// DoJSON performs a synchronous HTTP exchange with an optional JSON body and
// decodes the response body into OutputStruct.
//
// Error Handling Strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - Connection failures and body read failures return the error
//   - The response body is decoded REGARDLESS of HTTP status: the ModelRelay
//     API encodes failure semantically inside the payload, so a non-2xx
//     status with a parseable body is a valid answer, not a transport error
//   - JSON parsing errors include a response preview for debugging
//
// When apiKey is non-empty it is sent as an Authorization bearer header.
// The function always closes the response body before returning.
func DoJSON[OutputStruct any](ctx context.Context, client *http.Client, method string, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	observer := observability.ObserverFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("error marshaling body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		if observer != nil {
			observer.Debug("http request failed",
				observability.String(observability.AttrHTTPMethod, method),
				observability.String(observability.AttrHTTPURL, url),
				observability.Duration(observability.AttrHTTPDuration, requestDuration),
				observability.Error(err),
			)
		}
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer CloseWithLog(res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if observer != nil {
		observer.Debug("http response received",
			observability.String(observability.AttrHTTPMethod, method),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPBodySize, len(respBody)),
			observability.Duration(observability.AttrHTTPDuration, requestDuration),
		)
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), 500))
	}

	return res, &resStruct, nil
}
