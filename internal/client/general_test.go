package client

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/image-ranking-studies/studyfront/internal/study"
)

func TestHeartbeat(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"alive", http.StatusOK, `true`, true},
		{"backend says false", http.StatusOK, `false`, false},
		{"backend down", http.StatusServiceUnavailable, ``, false},
		{"garbage body", http.StatusOK, `"maybe"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newTestBackend(t, tt.status, tt.body)
			c, _ := newTestClient(backend)

			if got := c.Heartbeat(context.Background()); got != tt.want {
				t.Errorf("Heartbeat() = %v, want %v", got, tt.want)
			}

			req := backend.lastRequest(t)
			if req.Path != "/api/heartbeat" {
				t.Errorf("path = %q, want /api/heartbeat", req.Path)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `"https://img.example.com/img-1.jpg"`)
	c, _ := newTestClient(backend)

	imageURL, err := c.ImageURL(context.Background(), "img-1")
	if err != nil {
		t.Fatalf("ImageURL() error = %v", err)
	}
	if imageURL != "https://img.example.com/img-1.jpg" {
		t.Errorf("ImageURL() = %q", imageURL)
	}

	req := backend.lastRequest(t)
	if req.Path != "/api/image/img-1" {
		t.Errorf("path = %q, want /api/image/img-1", req.Path)
	}
}

func TestImageURLs(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `["u1","u2"]`)
	c, _ := newTestClient(backend)

	urls, err := c.ImageURLs(context.Background(), []string{"img-1", "img-2"})
	if err != nil {
		t.Fatalf("ImageURLs() error = %v", err)
	}
	if len(urls) != 2 || urls[0] != "u1" || urls[1] != "u2" {
		t.Errorf("ImageURLs() = %v, want [u1 u2]", urls)
	}

	req := backend.lastRequest(t)
	if req.Path != "/api/image/urls" {
		t.Errorf("path = %q, want /api/image/urls", req.Path)
	}
	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
}

func TestSubmitFeedback(t *testing.T) {
	backend := newTestBackend(t, http.StatusOK, `{"status":"received"}`)
	c, _ := newTestClient(backend)

	receipt, err := c.SubmitFeedback(context.Background(), study.Feedback{
		SampleID: "s-1",
		Message:  "image 3 did not load",
		WorkerID: "w-1",
		HitID:    "h-1",
	}, "tok.en")
	if err != nil {
		t.Fatalf("SubmitFeedback() error = %v", err)
	}
	if receipt["status"] != "received" {
		t.Errorf("receipt = %v", receipt)
	}

	req := backend.lastRequest(t)
	if req.Path != "/api/feedback/submit" {
		t.Errorf("path = %q, want /api/feedback/submit", req.Path)
	}
	if req.Method != http.MethodPut {
		t.Errorf("method = %q, want PUT", req.Method)
	}
	if req.Auth != "Bearer tok.en" {
		t.Errorf("Authorization = %q, want bearer token", req.Auth)
	}

	body := decodeBody(t, req.Body)
	if body["sample_id"] != "s-1" || body["worker_id"] != "w-1" {
		t.Errorf("body = %v, want feedback fields", body)
	}
}

func TestHeartbeatFailureLogsOnce(t *testing.T) {
	backend := newTestBackend(t, http.StatusBadGateway, ``)
	c, collector := newTestClient(backend)

	if got := c.Heartbeat(context.Background()); got {
		t.Error("Heartbeat() = true, want false")
	}
	if n := collector.CountAtLevel(slog.LevelError); n != 1 {
		t.Errorf("error log records = %d, want exactly 1", n)
	}
}
