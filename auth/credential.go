package auth

// AdminInfo is the display profile stored alongside the session token.
type AdminInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credential is the session state as the token store reports it. A token may
// be present without the admin profile, e.g. after a profile-less write;
// callers decide what that combination means.
type Credential struct {
	Token string
	Admin *AdminInfo
}

// Authenticated reports whether both parts of the credential are present.
func (c Credential) Authenticated() bool {
	return c.Token != "" && c.Admin != nil
}
