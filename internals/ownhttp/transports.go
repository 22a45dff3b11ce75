package ownhttp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// AddHeaderTransport sets the User-Agent header on every request
type AddHeaderTransport struct {
	T http.RoundTripper
}

func (adt *AddHeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the original request
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	return adt.T.RoundTrip(req)
}

func NewAddHeaderTransport(T http.RoundTripper) *AddHeaderTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	return &AddHeaderTransport{T}
}

// ThrottleTransport waits for Limiter before every request.
// Large asset downloads can otherwise get us rate limited by the proxy
type ThrottleTransport struct {
	T       http.RoundTripper
	Limiter *rate.Limiter
}

func (tt *ThrottleTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// returns early if the request is canceled while waiting
	if err := tt.Limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return tt.T.RoundTrip(req)
}

// NewThrottleTransport allows rps requests per second with bursts of up to burst requests
func NewThrottleTransport(T http.RoundTripper, rps float64, burst int) *ThrottleTransport {
	if T == nil {
		T = http.DefaultTransport
	}
	if burst < 1 {
		burst = 1
	}
	return &ThrottleTransport{T, rate.NewLimiter(rate.Limit(rps), burst)}
}
