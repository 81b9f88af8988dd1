package store

import "github.com/velostats/raceadmin/auth"

// Dual writes the token through to both tiers and keeps the admin profile in
// the durable tier only. Reads prefer the session-tier token and fall back to
// the durable one, so a credential survives a restart yet stays cheap to read
// within a process.
type Dual struct {
	session Store
	durable Store
}

// New builds the default dual store: an in-memory session tier over a
// file-backed durable tier at URL.
func New(URL string) *Dual {
	return NewDual(NewMemory(), NewFile(URL))
}

func NewDual(session, durable Store) *Dual {
	return &Dual{session: session, durable: durable}
}

func (d *Dual) Read() auth.Credential {
	cred := d.durable.Read()
	if session := d.session.Read(); session.Token != "" {
		cred.Token = session.Token
	}
	return cred
}

func (d *Dual) Write(token string, admin *auth.AdminInfo) error {
	if err := d.session.Write(token, nil); err != nil {
		return err
	}
	return d.durable.Write(token, admin)
}

func (d *Dual) Clear() error {
	if err := d.session.Clear(); err != nil {
		return err
	}
	return d.durable.Clear()
}
