package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newTestLimiter(now *time.Time) *multiLimiter {
	m := newMultiLimiter(rate.Every(time.Second), 2, time.Minute)
	m.now = func() time.Time { return *now }
	return m
}

func TestMultiLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := newTestLimiter(&now)

	assert.True(t, m.allow("a"))
	assert.True(t, m.allow("a"))
	assert.False(t, m.allow("a"), "burst exhausted")
	assert.True(t, m.allow("b"), "separate bucket per key")

	now = now.Add(time.Second)
	assert.True(t, m.allow("a"), "token refilled")
}

func TestMultiLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := newTestLimiter(&now)

	m.allow("idle")
	now = now.Add(45 * time.Second)
	m.allow("active")
	assert.Equal(t, 2, m.size())

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, m.sweep())
	assert.Equal(t, 1, m.size())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, m.sweep())
	assert.Equal(t, 0, m.size())
}

func TestMultiLimiter_RunStopsWithContext(t *testing.T) {
	m := newMultiLimiter(rate.Every(time.Second), 1, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{name: "forwarded single", xff: "203.0.113.7", remoteAddr: "10.0.0.1:1234", want: "203.0.113.7"},
		{name: "forwarded chain", xff: " 203.0.113.7 , 10.0.0.2", remoteAddr: "10.0.0.1:1234", want: "203.0.113.7"},
		{name: "remote addr", remoteAddr: "192.0.2.10:5555", want: "192.0.2.10"},
		{name: "remote addr without port", remoteAddr: "192.0.2.10", want: "192.0.2.10"},
		{name: "empty forwarded entry", xff: " , 10.0.0.2", remoteAddr: "192.0.2.10:5555", want: "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
