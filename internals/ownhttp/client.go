package ownhttp

import (
	"net"
	"net/http"
	"time"
)

// UserAgent is sent with every request made by clients of this package
var UserAgent = "mclaunch/dev"

// New returns a new http.Client with the AddHeaderTransport (setting the User-Agent header)
func New() *http.Client {
	return &http.Client{Transport: NewAddHeaderTransport(defaultTransport())}
}

// NewThrottled returns a client like New that sends at most rps requests per second.
// A rps of 0 or less disables throttling.
func NewThrottled(rps float64) *http.Client {
	if rps <= 0 {
		return New()
	}
	return &http.Client{
		Transport: NewAddHeaderTransport(NewThrottleTransport(defaultTransport(), rps, 1)),
	}
}

func defaultTransport() http.RoundTripper {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConnsPerHost:   16,
		TLSHandshakeTimeout:   20 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
