package client

import (
	"context"
	"net/http"
)

// Heartbeat reports whether the backend API is alive. Any failure - transport
// error, non-200, undecodable body - reads as "not alive"; the single error
// log still fires so a flapping backend is visible.
func (c *Client) Heartbeat(ctx context.Context) bool {
	req, err := c.newRequest(ctx, http.MethodGet, "api/heartbeat", nil, authNone, "")
	if err != nil {
		c.logFailure("heartbeat", err)
		return false
	}

	var alive bool
	if err := c.do(req, &alive); err != nil {
		c.logFailure("heartbeat", err)
		return false
	}

	return alive
}
