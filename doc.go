// Package raceadmin provides programmatic access to the cycling-race data
// platform's admin backend.
//
// The package glues the credential store and access guard defined in the
// auth packages with the HTTP client in the client package. In practice it
// is used as an umbrella: construct a client with New, log in through its
// Admin service, and call the entity services from there. The raceadmin CLI
// under cmd/raceadmin is a thin front over the same surface.
package raceadmin
