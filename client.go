package raceadmin

import (
	"github.com/velostats/raceadmin/auth"
	"github.com/velostats/raceadmin/auth/store"
	"github.com/velostats/raceadmin/client"
)

// New returns a Client for the admin backend at baseURL, backed by the
// default dual credential store persisted at credentialsURL. Extra options
// may override any default.
func New(baseURL, credentialsURL string, options ...client.Option) (*client.Client, error) {
	opts := append([]client.Option{client.WithStore(store.New(credentialsURL))}, options...)
	return client.New(baseURL, opts...)
}

// NewGuard returns an access guard over the credential store at
// credentialsURL without constructing a client.
func NewGuard(credentialsURL string) *auth.Guard {
	return auth.NewGuard(store.New(credentialsURL))
}
