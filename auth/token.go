package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// TokenExpiry decodes the bearer token without verifying its signature and
// returns its expiry claim. Expiry stays server-authoritative: a token that
// is not a JWT, or carries no exp claim, yields a zero time.
func TokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// TokenSource adapts a credential store to oauth2.TokenSource so the session
// token composes with transports built on golang.org/x/oauth2.
func TokenSource(store Reader) oauth2.TokenSource {
	return tokenSource{store: store}
}

type tokenSource struct {
	store Reader
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	cred := s.store.Read()
	if cred.Token == "" {
		return nil, ErrLoginRequired
	}
	return &oauth2.Token{
		AccessToken: cred.Token,
		TokenType:   "Bearer",
		Expiry:      TokenExpiry(cred.Token),
	}, nil
}
