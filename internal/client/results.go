package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

// Receipt is the backend's decoded response to a result submission. The exact
// shape is owned by the study coordinator, so it is surfaced as-is.
type Receipt map[string]any

// resultEndpoint holds the per-study-type route variants of the submission
// dispatch table.
type resultEndpoint struct {
	submitRoute string // authenticated variant, carries a bearer header
	mturkRoute  string // credential-free variant, identified by mt_params
}

var resultEndpoints = buildResultEndpoints()

func buildResultEndpoints() map[study.Type]resultEndpoint {
	endpoints := make(map[study.Type]resultEndpoint, len(study.Types()))
	for _, t := range study.Types() {
		endpoints[t] = resultEndpoint{
			submitRoute: fmt.Sprintf("api/%s_result/submit", t),
			mturkRoute:  fmt.Sprintf("api/%s_result/mturk/submit", t),
		}
	}
	return endpoints
}

// SubmitOptions carries the crediting and identity context of a submission.
// All fields default to empty/absent.
type SubmitOptions struct {
	// MTurk crediting fields. The group is all-or-nothing: crediting
	// parameters are attached only when all three are non-empty.
	WorkerID     string
	AssignmentID string
	HitID        string

	// login session identity, empty in the anonymous/MTurk-embedded flow
	UserID string
	JWT    string
}

// SubmitResult delivers a participant's result to the backend route matching
// its study type.
//
// Routing: without crediting parameters the result goes to the authenticated
// `{type}_result/submit` route with a bearer header built from opts.JWT; with
// crediting parameters it goes to the credential-free `{type}_result/mturk/submit`
// route and no auth header is sent. The two are mutually exclusive and
// exhaustive. Note the bearer header is sent even when opts.JWT is empty -
// this mirrors the behaviour the study was run with (see the pinned test).
//
// Exactly one request leaves per call, and exactly one error-level log record
// is emitted on failure. There are no retries.
func (c *Client) SubmitResult(ctx context.Context, res study.Result, opts SubmitOptions) (Receipt, error) {
	endpoint, ok := resultEndpoints[res.StudyType()]
	if !ok {
		err := fmt.Errorf("unknown study type %q", res.StudyType())
		c.logFailure("submit_result", err)
		return nil, err
	}

	mt := study.NewMTurkParams(opts.WorkerID, opts.AssignmentID, opts.HitID)
	study.AttachIdentity(res, mt, opts.UserID)

	payload, err := validateResult(res)
	if err != nil {
		c.logFailure("submit_result", err)
		return nil, err
	}

	route := endpoint.submitRoute
	mode := authBearer
	if mt != nil {
		route = endpoint.mturkRoute
		mode = authNone
	}

	req, err := c.newRawRequest(ctx, http.MethodPut, route, payload, mode, opts.JWT)
	if err != nil {
		c.logFailure("submit_result", err)
		return nil, err
	}

	var receipt Receipt
	if err := c.do(req, &receipt); err != nil {
		c.logFailure("submit_result", err)
		return nil, err
	}

	return receipt, nil
}
