package client

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/velostats/raceadmin/auth/store"
)

// Option represents option
type Option func(c *Client)

// WithStore sets the credential store; defaults to an in-memory store.
func WithStore(s store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithHTTPClient sets the http client; its transport is wrapped with the
// auth round tripper.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSessionExpired sets the hook fired once when a qualifying 401 clears
// the stored credential.
func WithSessionExpired(fn func()) Option {
	return func(c *Client) {
		c.expired = fn
	}
}
