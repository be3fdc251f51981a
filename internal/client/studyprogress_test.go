package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
)

func TestProgress(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK,
		`{"num_todo":5,"num_in_progress":1,"num_done":14,"num_total":20,"run":3}`)
	c, _ := newTestClient(backend)

	progress, err := c.Progress(context.Background(), `"tok.en"`)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}

	req := backend.lastRequest(t)
	if req.Path != "/api/study/progress" {
		t.Errorf("path = %q, want /api/study/progress", req.Path)
	}
	if req.Auth != "Bearer tok.en" {
		t.Errorf("Authorization = %q, want quote-stripped bearer token", req.Auth)
	}

	if progress.NumDone != 14 || progress.NumTotal != 20 || progress.Run != 3 {
		t.Errorf("progress = %+v, want decoded counters", progress)
	}
}

func TestProgressForbiddenBodyPassthrough(t *testing.T) {
	backend := newTestBackend(t, http.StatusForbidden, `{"error":"study finished"}`)
	c, collector := newTestClient(backend)

	_, err := c.Progress(context.Background(), "tok.en")

	var forbidden *ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("err = %v, want *ForbiddenError", err)
	}
	if forbidden.Body["error"] != "study finished" {
		t.Errorf("Body = %v, want the backend's refusal reason", forbidden.Body)
	}
	if n := collector.CountAtLevel(slog.LevelError); n != 0 {
		t.Errorf("error log records = %d, want 0 for a refusal", n)
	}
}
