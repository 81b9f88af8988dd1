// Package transport implements the http.RoundTripper through which every
// backend call passes: it injects the bearer token read from the credential
// store, negotiates the content type, stamps a correlation id, and reacts to
// session expiry by clearing the store and firing a one-shot hook.
//
// The RoundTripper integrates with the higher-level client.Client but can
// also be used directly to secure arbitrary HTTP traffic against the same
// backend.
package transport
