package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

// NextSample fetches the next unjudged sample of the given study type.
//
// The backend answers with either a sample object or a bare integer: the
// number of seconds until a sample becomes available again (all samples are
// currently checked out to other participants). In the latter case the sample
// is nil and retryAfter carries the wait. The server is the sole source of
// truth for "next" semantics - nothing is cached here.
func (c *Client) NextSample(ctx context.Context, t study.Type) (sample *study.Sample, retryAfter int, err error) {
	if !t.Valid() {
		err := fmt.Errorf("unknown study type %q", t)
		c.logFailure("next_sample", err)
		return nil, 0, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("api/%s_sample/next", t), nil, authNone, "")
	if err != nil {
		c.logFailure("next_sample", err)
		return nil, 0, err
	}

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		c.logFailure("next_sample", err)
		return nil, 0, err
	}

	var wait int
	if err := json.Unmarshal(raw, &wait); err == nil {
		return nil, wait, nil
	}

	var s study.Sample
	if err := json.Unmarshal(raw, &s); err != nil {
		cerr := NewClientInternalError(err, "decoding next sample")
		c.logFailure("next_sample", cerr)
		return nil, 0, cerr
	}

	return &s, 0, nil
}

// LoadSample fetches a specific sample by id. The id is path-escaped; the
// route is otherwise exact string interpolation.
func (c *Client) LoadSample(ctx context.Context, t study.Type, sampleID string) (*study.Sample, error) {
	if !t.Valid() {
		err := fmt.Errorf("unknown study type %q", t)
		c.logFailure("load_sample", err)
		return nil, err
	}

	route := fmt.Sprintf("api/%s_sample/%s", t, url.PathEscape(sampleID))
	req, err := c.newRequest(ctx, http.MethodGet, route, nil, authNone, "")
	if err != nil {
		c.logFailure("load_sample", err)
		return nil, err
	}

	var s study.Sample
	if err := c.do(req, &s); err != nil {
		c.logFailure("load_sample", err)
		return nil, err
	}

	return &s, nil
}
