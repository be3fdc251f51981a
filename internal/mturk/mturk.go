// Package mturk submits completed assignments back to Mechanical Turk.
//
// This is the one call that does not go to the study backend: when a HIT is
// embedded as an external question, the worker's answer must be posted to the
// MTurk host named by the HIT's turkSubmitTo parameter, as a multipart form.
package mturk

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	SandboxEndpoint    = "https://workersandbox.mturk.com"
	ProductionEndpoint = "https://mturk.com"

	submitTimeout = 10 * time.Second
)

// EndpointURL returns the MTurk host assignments are submitted to.
func EndpointURL(sandbox bool) string {
	if sandbox {
		return SandboxEndpoint
	}
	return ProductionEndpoint
}

// Submitter posts completed assignments to Mechanical Turk.
type Submitter struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewSubmitter(logger *slog.Logger) *Submitter {
	return &Submitter{
		httpClient: &http.Client{
			Timeout: submitTimeout,
		},
		logger: logger,
	}
}

// SubmitAssignment posts the worker's ranking to the HIT's submit URL.
// Returns true on HTTP 200; any failure is logged once and reads as false -
// the caller decides whether to let the worker retry.
func (s *Submitter) SubmitAssignment(ctx context.Context, submitURL, assignmentID, erID, ranking string) bool {
	var body strings.Builder
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		"assignmentId": assignmentID,
		"erId":         erID,
		"ranking":      ranking,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			s.logFailure(submitURL, fmt.Errorf("building form field %s: %w", name, err))
			return false
		}
	}
	if err := form.Close(); err != nil {
		s.logFailure(submitURL, fmt.Errorf("finalizing form: %w", err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitURL, strings.NewReader(body.String()))
	if err != nil {
		s.logFailure(submitURL, fmt.Errorf("creating request: %w", err))
		return false
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	res, err := s.httpClient.Do(req)
	if err != nil {
		s.logFailure(submitURL, err)
		return false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		s.logFailure(submitURL, fmt.Errorf("mturk answered status %d", res.StatusCode))
		return false
	}

	return true
}

func (s *Submitter) logFailure(submitURL string, err error) {
	s.logger.Error("assignment submission failed",
		slog.String("submit_url", submitURL),
		slog.String("error", err.Error()),
	)
}
