package transport

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/velostats/raceadmin/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets the credential store
func WithStore(s store.Store) Option {
	return func(t *RoundTripper) {
		t.store = s
	}
}

// WithTransport sets the underlying round tripper
func WithTransport(next http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = next
	}
}

// WithSessionExpired sets the hook fired after a qualifying 401 has cleared
// the credential store
func WithSessionExpired(fn func()) Option {
	return func(t *RoundTripper) {
		t.expired = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}
