package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

// Progress fetches the authenticated user's view of the study progress.
//
// Like Authenticate, a 403 carries an explanation in the body (token expired,
// study not running) and is surfaced as a *ForbiddenError instead of an opaque
// failure.
func (c *Client) Progress(ctx context.Context, jwt string) (*study.Progress, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "api/study/progress", nil, authBearer, jwt)
	if err != nil {
		c.logFailure("study_progress", err)
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		cerr := NewClientConnectionError(err)
		c.logFailure("study_progress", cerr)
		return nil, cerr
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusForbidden {
		forbidden := parseForbidden(res)
		c.logger.Warn("study progress refused",
			slog.Any("reason", forbidden.Body),
		)
		return nil, forbidden
	}

	if res.StatusCode != http.StatusOK {
		cerr := NewClientApiError(res)
		c.logFailure("study_progress", cerr)
		return nil, cerr
	}

	var progress study.Progress
	if err := json.NewDecoder(res.Body).Decode(&progress); err != nil {
		cerr := NewClientInternalError(err, "decoding study progress")
		c.logFailure("study_progress", cerr)
		return nil, cerr
	}

	return &progress, nil
}
