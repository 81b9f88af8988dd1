// Package client provides the HTTP client for the race-data admin backend.
//
// Client.Request is the single chokepoint every call passes through: the
// transport injects the bearer token from the credential store, content type
// is negotiated per payload, failures are normalized to *Error, and a 401 on
// a non-exempt path tears the session down exactly once. Entity services
// (Races, Riders, Teams, Stages, Admin) wrap Request with typed operations
// and decode their own response envelopes, because the backend's total-count
// field names vary per resource.
package client
