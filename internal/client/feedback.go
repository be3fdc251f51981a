package client

import (
	"context"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

// SubmitFeedback delivers a participant's free-text feedback about a sample.
// Feedback always travels the authenticated route; MTurk workers are
// identified by the worker/HIT ids inside the payload instead of a separate
// route variant.
func (c *Client) SubmitFeedback(ctx context.Context, feedback study.Feedback, jwt string) (Receipt, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "api/feedback/submit", feedback, authBearer, jwt)
	if err != nil {
		c.logFailure("submit_feedback", err)
		return nil, err
	}

	var receipt Receipt
	if err := c.do(req, &receipt); err != nil {
		c.logFailure("submit_feedback", err)
		return nil, err
	}

	return receipt, nil
}
