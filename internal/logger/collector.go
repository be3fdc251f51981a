package logger

import (
	"context"
	"log/slog"
	"sync"
)

// Collector is a slog.Handler that records log entries in memory.
//
// It backs the logger injected into API clients under test, so tests can assert
// on the number and level of emitted records instead of scraping output.
type Collector struct {
	mu      sync.Mutex
	records []slog.Record
}

func NewCollector() *Collector {
	return &Collector{}
}

// NewCollectorLogger returns a logger backed by a fresh Collector, plus the
// Collector itself for inspection.
func NewCollectorLogger() (*slog.Logger, *Collector) {
	c := NewCollector()
	return slog.New(c), c
}

func (c *Collector) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (c *Collector) Handle(_ context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r.Clone())
	return nil
}

func (c *Collector) WithAttrs(_ []slog.Attr) slog.Handler {
	return c
}

func (c *Collector) WithGroup(_ string) slog.Handler {
	return c
}

// Records returns a copy of the collected records.
func (c *Collector) Records() []slog.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]slog.Record, len(c.records))
	copy(out, c.records)
	return out
}

// CountAtLevel returns the number of collected records at the given level.
func (c *Collector) CountAtLevel(level slog.Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, r := range c.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// NewNopLogger returns a logger that discards everything. Used where a
// component requires a logger but the caller has no interest in its output.
func NewNopLogger() *slog.Logger {
	return slog.New(nopHandler{})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
