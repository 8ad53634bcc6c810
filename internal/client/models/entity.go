// Package models defines the client-side shapes of server resources: the user
// profile, the three trackable resource kinds, and the read-only analytics
// payloads. The server assigns identifiers; an entity without one is a draft
// that has never been persisted.
package models

// Entity is implemented by every syncable resource kind.
type Entity interface {
	// GetID returns the server-assigned identifier, or "" for a draft.
	GetID() string

	// Validate runs the client-side pre-submit checks. These are basic
	// required/range guards, not a substitute for server validation.
	Validate() error
}
