package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/image-ranking-studies/studyfront/internal/logger"
)

// recordedRequest captures what a test backend received.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string // Authorization header, "" if absent
	Body   []byte
}

// testBackend is an httptest server that records every request and plays back
// a scripted response.
type testBackend struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
	server *httptest.Server
}

func newTestBackend(t *testing.T, status int, body string) *testBackend {
	t.Helper()

	b := &testBackend{status: status, body: body}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   data,
		})
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	}))
	t.Cleanup(b.server.Close)

	return b
}

func (b *testBackend) Requests() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

func (b *testBackend) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("backend received no requests")
	}
	return reqs[len(reqs)-1]
}

// newTestClient wires a client to the test backend with a collector logger so
// tests can count emitted records.
func newTestClient(b *testBackend) (*Client, *logger.Collector) {
	log, collector := logger.NewCollectorLogger()
	return NewClient(b.server.URL, "/", log), collector
}

func decodeBody(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	return doc
}

func TestBearerValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain token", "abc.def.ghi", "Bearer abc.def.ghi"},
		{"quoted token", `"abc.def.ghi"`, "Bearer abc.def.ghi"},
		{"inner quotes kept", `a"b`, `Bearer a"b`},
		{"empty token still yields header value", "", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BearerValue(tt.token); got != tt.want {
				t.Errorf("BearerValue(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
