package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// AuthResponse is the backend's answer to a successful authentication.
type AuthResponse struct {
	JWT string `json:"jwt"`
}

// Authenticate exchanges a participant id and password for a session token.
//
// A 403 answer is not swallowed as a generic failure: the backend explains the
// refusal in the response body (wrong credentials, study closed), so it is
// parsed and returned as a *ForbiddenError for the caller to render. This is
// logged at warn, not error - it is an expected outcome, not a transport
// problem.
func (c *Client) Authenticate(ctx context.Context, userID, password string) (*AuthResponse, error) {
	body := struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}{
		ID:       userID,
		Password: password,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "api/user/authenticate", body, authNone, "")
	if err != nil {
		c.logFailure("authenticate", err)
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		cerr := NewClientConnectionError(err)
		c.logFailure("authenticate", cerr)
		return nil, cerr
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusForbidden {
		forbidden := parseForbidden(res)
		c.logger.Warn("authentication refused",
			slog.String("user_id", userID),
			slog.Any("reason", forbidden.Body),
		)
		return nil, forbidden
	}

	if res.StatusCode != http.StatusOK {
		cerr := NewClientApiError(res)
		c.logFailure("authenticate", cerr)
		return nil, cerr
	}

	var auth AuthResponse
	if err := json.NewDecoder(res.Body).Decode(&auth); err != nil {
		cerr := NewClientInternalError(err, "decoding authentication response")
		c.logFailure("authenticate", cerr)
		return nil, cerr
	}

	return &auth, nil
}
