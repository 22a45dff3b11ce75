package ownhttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_setsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	res, err := New().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()

	if got != UserAgent {
		t.Errorf("User-Agent = %q, want %q", got, UserAgent)
	}
}

func TestNewThrottled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	// 20 rps with a burst of 1: three requests take at least ~100ms
	client := NewThrottled(20)
	start := time.Now()
	for i := 0; i < 3; i++ {
		res, err := client.Get(srv.URL)
		if err != nil {
			t.Fatal(err)
		}
		res.Body.Close()
	}

	if n := hits.Load(); n != 3 {
		t.Errorf("expected 3 requests, got %d", n)
	}
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("requests were not throttled (took %s)", elapsed)
	}
}

func TestThrottleTransport_canceled(t *testing.T) {
	tt := NewThrottleTransport(nil, 0.001, 1)
	// use up the burst
	tt.Limiter.Allow()

	req := httptest.NewRequest(http.MethodGet, "http://mclaunch.test/", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()

	if _, err := tt.RoundTrip(req.WithContext(ctx)); err == nil {
		t.Error("expected an error for a canceled request")
	}
}
