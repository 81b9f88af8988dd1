// Package auth holds the session credential model, the access guard for
// protected operations and helpers for inspecting the bearer token.
package auth
