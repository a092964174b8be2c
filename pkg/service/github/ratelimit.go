package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimit is the rate limit state reported by GitHub response headers
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
	Known     bool
}

// rateLimitTracker records X-RateLimit-* headers from every response.
// It is informational only; requests are never delayed.
type rateLimitTracker struct {
	mu    sync.Mutex
	state RateLimit
}

func (t *rateLimitTracker) update(header http.Header) {
	remaining, err := strconv.Atoi(header.Get("X-RateLimit-Remaining"))
	if err != nil {
		return
	}
	resetUnix, err := strconv.ParseInt(header.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return
	}
	limit, _ := strconv.Atoi(header.Get("X-RateLimit-Limit"))

	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = RateLimit{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Unix(resetUnix, 0),
		Known:     true,
	}
}

func (t *rateLimitTracker) exhausted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Known && t.state.Remaining <= 0
}

func (t *rateLimitTracker) snapshot() RateLimit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
