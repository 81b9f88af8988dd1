package store

import (
	"sync"

	"github.com/velostats/raceadmin/auth"
)

// Store is a persistence tier for the session credential. Reads never fail;
// absent values read as the zero credential.
type Store interface {
	Read() auth.Credential
	// Write stores the token unconditionally and the admin profile only when
	// non-nil; a nil profile leaves any previously stored one untouched.
	Write(token string, admin *auth.AdminInfo) error
	// Clear removes both token and profile. Idempotent.
	Clear() error
}

// Memory keeps the credential in process memory. It is the session tier of
// the dual store and the default for tests.
type Memory struct {
	mu    sync.RWMutex
	token string
	admin *auth.AdminInfo
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Read() auth.Credential {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return auth.Credential{Token: m.token, Admin: m.admin}
}

func (m *Memory) Write(token string, admin *auth.AdminInfo) error {
	if token == "" {
		return auth.ErrEmptyToken
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	if admin != nil {
		m.admin = admin
	}
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.admin = nil
	return nil
}
