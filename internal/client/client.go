// Package client is the typed client for the study backend REST API.
//
// The submission and sample-retrieval clients dispatch on the study type via a
// small table (route suffixes plus a payload validator per type); the
// peripheral clients (user, study, image, feedback, heartbeat) are single or
// dual endpoint wrappers over the same request builder. Failures are logged
// once and surfaced as errors - no call is ever retried, the caller decides
// whether to re-invoke.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Client handles communication with the study backend API
type Client struct {
	baseURL    string
	ctxPath    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the backend API mounted under ctxPath on
// baseURL. The logger is injected so callers control where failures surface
// (console in the server, a collector in tests).
func NewClient(baseURL string, ctxPath string, logger *slog.Logger) *Client {
	if ctxPath == "" {
		ctxPath = "/"
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		ctxPath: ctxPath,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// url builds the full URL for a route relative to the API mount point, e.g.
// url("api/ranking_sample/next") -> "http://host:port/api/ranking_sample/next".
func (c *Client) url(route string) string {
	return c.baseURL + c.ctxPath + route
}

// authMode selects how a request is authenticated. Authenticated and
// mturk-mode requests are mutually exclusive: a request carries a bearer
// header or travels the credential-free mturk route variant, never both.
type authMode int

const (
	authNone authMode = iota
	authBearer
)

// BearerValue builds the value of the Authorization header from a raw token.
//
// Tokens that were stored as JSON strings arrive with surrounding quote
// characters; these are stripped so the header always carries the bare token.
// Quotes inside the token are left alone. Note that an empty token still
// produces a "Bearer " header - the caller decides whether to send the header
// at all via the auth mode.
func BearerValue(token string) string {
	return "Bearer " + strings.Trim(token, `"`)
}

// newRequest builds an API request with the standard JSON headers. A non-nil
// body is marshalled to JSON.
func (c *Client) newRequest(ctx context.Context, method, route string, body any, mode authMode, jwt string) (*http.Request, error) {
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return nil, NewClientInternalError(err, "marshaling request body")
		}
	}
	return c.newRawRequest(ctx, method, route, data, mode, jwt)
}

// newRawRequest builds an API request around pre-marshalled JSON. The result
// submission path uses this so the validated payload bytes are exactly the
// transmitted bytes.
func (c *Client) newRawRequest(ctx context.Context, method, route string, data []byte, mode authMode, jwt string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(route), bytes.NewReader(data))
	if err != nil {
		return nil, NewClientInternalError(err, "creating request")
	}

	req.Header.Set("Accept", "application/json")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mode == authBearer {
		req.Header.Set("Authorization", BearerValue(jwt))
	}

	return req, nil
}

// do sends the request and enforces the shared success contract: HTTP 200 with
// a decodable body, decoded into out (out may be nil to discard the body).
// Anything else - transport failure, non-200 status, decode failure - is
// returned as a *ClientError. do does not log; each public operation logs its
// failure exactly once.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return NewClientConnectionError(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return NewClientApiError(res)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return NewClientInternalError(err, fmt.Sprintf("decoding %s response", req.URL.Path))
	}

	return nil
}

// logFailure emits the single error-level record an operation produces on
// failure.
func (c *Client) logFailure(op string, err error) {
	c.logger.Error("API request failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}
