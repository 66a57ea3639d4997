package client

import (
	"context"
	"fmt"

	"github.com/modelrelay/relay/core/api"
	"github.com/modelrelay/relay/internal/utils"
)

// diagnosticModel is the canned model used by TestConnection. Any model the
// aggregator routes works; this one is cheap.
const diagnosticModel = "gpt-4o-mini"

// Ping checks that the configured endpoint is reachable and answering, by
// requesting the model catalog. Returns nil on a healthy service.
func (c *Client) Ping(ctx context.Context) error {
	envelope := c.Models(ctx, nil)
	if envelope.Failed() {
		return fmt.Errorf("ping failed: %s", envelope.Error.Message)
	}
	return nil
}

// TestConnection performs a full round-trip through the completion path
// with a canned one-token request, verifying credential and routing, not
// just reachability.
func (c *Client) TestConnection(ctx context.Context) (*api.ResponseEnvelope, error) {
	messages := []api.Message{{Role: api.RoleUser, Content: "ping"}}
	return c.Chat(ctx, diagnosticModel, messages, &api.ChatOptions{MaxTokens: utils.Ptr(1)})
}
