// Package network builds the HTTP clients used to talk to the listings API.
package network

import (
	"net/http"
	"time"

	"github.com/epibrowse/epibrowse/constant"
)

// Options controls how a client is built.
type Options struct {
	Timeout time.Duration
	// Impersonate routes requests through a Chrome TLS fingerprint.
	Impersonate bool
	// Authorization, when non-empty, is sent verbatim in the Authorization header.
	Authorization string
}

// New returns a client with a tuned transport. Every request carries the application User-Agent.
func New(options Options) *http.Client {
	var base http.RoundTripper = newTransport()
	if options.Impersonate {
		base = newFingerprintTransport()
	}

	return &http.Client{
		Timeout: options.Timeout,
		Transport: &headerTransport{
			base:          base,
			authorization: options.Authorization,
		},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

type headerTransport struct {
	base          http.RoundTripper
	authorization string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	req.Header.Set("Accept", "application/json")
	if t.authorization != "" {
		req.Header.Set("Authorization", t.authorization)
	}
	return t.base.RoundTrip(req)
}
