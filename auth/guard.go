package auth

// Reader is the read-only store view the guard needs.
type Reader interface {
	Read() Credential
}

// Guard gates access to protected operations based on the stored credential.
// The check is synchronous and does not probe the backend: an expired but
// present token still passes until a request observes a 401.
type Guard struct {
	store Reader
}

func NewGuard(store Reader) *Guard {
	return &Guard{store: store}
}

// Allowed reports whether the stored credential carries both a token and an
// admin profile. A token without a profile does not pass.
func (g *Guard) Allowed() bool {
	return g.store.Read().Authenticated()
}

// Require returns ErrLoginRequired when access is not allowed, so callers can
// route the user to the login flow.
func (g *Guard) Require() error {
	if !g.Allowed() {
		return ErrLoginRequired
	}
	return nil
}
