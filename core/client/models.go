package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/modelrelay/relay/core/api"
)

// Models fetches the model catalog. The optional query is appended as-is;
// the catalog payload is passed through opaque in the envelope's Data
// field. Catalog lookups ride the same retry machinery as completions,
// just without a request body.
func (c *Client) Models(ctx context.Context, query url.Values) *api.ResponseEnvelope {
	path := modelsEndpoint
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	snap := c.snapshot()
	return c.executeJSON(ctx, snap, path, http.MethodGet, nil, snap.Timeout)
}

// Model fetches catalog details for a single model by name.
func (c *Client) Model(ctx context.Context, name string) (*api.ResponseEnvelope, error) {
	if name == "" {
		return nil, &api.ValidationError{Field: "name", Reason: "must be a non-empty string"}
	}

	snap := c.snapshot()
	path := modelsEndpoint + "/" + url.PathEscape(name)
	return c.executeJSON(ctx, snap, path, http.MethodGet, nil, snap.Timeout), nil
}

// ModelsByProvider fetches the catalog entries of one upstream provider
// (openai, gemini, anthropic, moonshot).
func (c *Client) ModelsByProvider(ctx context.Context, provider string) (*api.ResponseEnvelope, error) {
	if provider == "" {
		return nil, &api.ValidationError{Field: "provider", Reason: "must be a non-empty string"}
	}

	snap := c.snapshot()
	path := modelsEndpoint + "/provider/" + url.PathEscape(provider)
	return c.executeJSON(ctx, snap, path, http.MethodGet, nil, snap.Timeout), nil
}
