// Package store persists the admin session credential across two tiers: an
// in-memory session tier and a durable JSON snapshot, written through
// together on every login.
//
// The in-memory store is sufficient for most unit-test scenarios; the dual
// store is what the client and CLI use by default.
package store
