package client

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

func TestNextSampleRoutes(t *testing.T) {
	for _, st := range study.Types() {
		t.Run(st.String(), func(t *testing.T) {
			backend := newTestBackend(t, http.StatusOK,
				`{"id":"s-1","query":"red car","image_ids":["img-1","img-2"]}`)
			c, _ := newTestClient(backend)

			sample, retryAfter, err := c.NextSample(context.Background(), st)
			if err != nil {
				t.Fatalf("NextSample() error = %v", err)
			}

			req := backend.lastRequest(t)
			wantPath := "/api/" + st.String() + "_sample/next"
			if req.Path != wantPath {
				t.Errorf("path = %q, want %q", req.Path, wantPath)
			}
			if req.Method != http.MethodGet {
				t.Errorf("method = %q, want GET", req.Method)
			}

			if sample == nil || sample.ID != "s-1" {
				t.Fatalf("sample = %+v, want id s-1", sample)
			}
			if retryAfter != 0 {
				t.Errorf("retryAfter = %d, want 0 when a sample is served", retryAfter)
			}
		})
	}
}

// The backend answers with a bare integer when every open sample is checked
// out: the number of seconds to wait before asking again.
func TestNextSampleWaitTime(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `30`)
	c, _ := newTestClient(backend)

	sample, retryAfter, err := c.NextSample(context.Background(), study.Ranking)
	if err != nil {
		t.Fatalf("NextSample() error = %v", err)
	}
	if sample != nil {
		t.Errorf("sample = %+v, want nil during a wait", sample)
	}
	if retryAfter != 30 {
		t.Errorf("retryAfter = %d, want 30", retryAfter)
	}
}

func TestNextSampleInvalidType(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{}`)
	c, collector := newTestClient(backend)

	if _, _, err := c.NextSample(context.Background(), study.Type("bogus")); err == nil {
		t.Fatal("NextSample() expected error for unknown study type")
	}
	if n := len(backend.Requests()); n != 0 {
		t.Errorf("backend received %d requests, want 0", n)
	}
	if n := collector.CountAtLevel(slog.LevelError); n != 1 {
		t.Errorf("error log records = %d, want exactly 1", n)
	}
}

func TestLoadSample(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{"id":"s-42","image_ids":["img-1"]}`)
	c, _ := newTestClient(backend)

	sample, err := c.LoadSample(context.Background(), study.Likert, "s-42")
	if err != nil {
		t.Fatalf("LoadSample() error = %v", err)
	}

	req := backend.lastRequest(t)
	if req.Path != "/api/likert_sample/s-42" {
		t.Errorf("path = %q, want /api/likert_sample/s-42", req.Path)
	}
	if sample.ID != "s-42" {
		t.Errorf("sample id = %q, want s-42", sample.ID)
	}
}

func TestLoadSampleEscapesID(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{"id":"a/b"}`)
	c, _ := newTestClient(backend)

	if _, err := c.LoadSample(context.Background(), study.Rating, "a/b"); err != nil {
		t.Fatalf("LoadSample() error = %v", err)
	}

	// the raw path must keep the id a single segment
	req := backend.lastRequest(t)
	if req.Path != "/api/rating_sample/a/b" && req.Path != "/api/rating_sample/a%2Fb" {
		t.Errorf("path = %q, want escaped sample id", req.Path)
	}
}

func TestNextSampleBackendFailureLogsOnce(t *testing.T) {
	backend := newTestBackend(t, http.StatusServiceUnavailable, `{"detail":"maintenance"}`)
	c, collector := newTestClient(backend)

	if _, _, err := c.NextSample(context.Background(), study.Ranking); err == nil {
		t.Fatal("NextSample() expected error")
	}
	if n := len(backend.Requests()); n != 1 {
		t.Errorf("backend received %d requests, want exactly 1 (no retries)", n)
	}
	if n := collector.CountAtLevel(slog.LevelError); n != 1 {
		t.Errorf("error log records = %d, want exactly 1", n)
	}
}
