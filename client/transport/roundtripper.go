package transport

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/velostats/raceadmin/auth/store"
)

// AnonymousToken is the bearer value sent when no credential is stored.
// Requests are always attempted; the backend is the authority on rejecting
// unauthenticated calls.
const AnonymousToken = "null"

// expiryExemptPath marks requests whose 401 responses do not mean the
// session expired; rider endpoints answer 401 for guest-access reasons of
// their own and must not force a logout.
const expiryExemptPath = "/riders"

// RoundTripper decorates every outgoing request with the bearer token and
// the negotiated content type, and watches responses for session expiry.
//
// A 401 on any non-exempt path clears the credential store and fires the
// expiry hook, at most once for the lifetime of the round tripper even when
// concurrent in-flight requests land 401 together. The latch is never reset;
// a fresh login builds a fresh client.
type RoundTripper struct {
	store     store.Store
	transport http.RoundTripper
	expired   func()
	logger    zerolog.Logger
	once      sync.Once
}

func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemory(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Store returns the credential store the round tripper reads from.
func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	next := req.Clone(req.Context())

	token := r.store.Read().Token
	if token == "" {
		token = AnonymousToken
	}
	next.Header.Set("Authorization", "Bearer "+token)
	next.Header.Set("X-Request-Id", uuid.New().String())

	// multipart bodies carry their own boundary content type; everything else
	// is JSON
	if !strings.HasPrefix(next.Header.Get("Content-Type"), "multipart/") {
		next.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.transport.RoundTrip(next)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !strings.Contains(req.URL.Path, expiryExemptPath) {
		r.once.Do(func() {
			r.logger.Warn().Str("path", req.URL.Path).Msg("session expired, clearing credential")
			if err := r.store.Clear(); err != nil {
				r.logger.Err(err).Msg("failed to clear credential store")
			}
			if r.expired != nil {
				r.expired()
			}
		})
	}
	return resp, nil
}
