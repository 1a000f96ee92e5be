package auth

// Package auth contains domain-level types for authentication and access
// control. It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleDoctor       Role = "DOCTOR"
	RoleNurse        Role = "NURSE"
	RoleReceptionist Role = "RECEPTIONIST"
	RolePatient      Role = "PATIENT"

	// RoleUnknown is the sentinel for role strings outside the closed
	// enumeration. It is a member of no policy and therefore denied everywhere.
	RoleUnknown Role = "UNKNOWN"
)

// ParseRole maps a storage-layer role string (lowercase in the profiles table)
// into the closed enumeration. Unrecognized values map to RoleUnknown rather
// than failing; callers must treat RoleUnknown as deny-everywhere.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "doctor":
		return RoleDoctor
	case "nurse":
		return RoleNurse
	case "receptionist":
		return RoleReceptionist
	case "patient":
		return RolePatient
	default:
		return RoleUnknown
	}
}

// StorageString returns the lowercase form used by the profiles table.
func (r Role) StorageString() string { return strings.ToLower(string(r)) }

// Known reports whether the role is a member of the closed enumeration.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient:
		return true
	default:
		return false
	}
}

// Identity represents the authenticated subject returned by the identity
// provider. Adapters map provider-specific claims into this shape. The
// provider is authoritative for "is there a live credential" only; role always
// comes from the profiles table.
type Identity struct {
	Subject     string // stable provider identifier (sub)
	Email       string
	DisplayName string    // optional provider hint; the profiles table is authoritative
	AvatarURL   string    // optional, from provider metadata
	ExpiresAt   time.Time // absolute credential expiry
}

// Principal is the resolved identity held in a session: provider identity plus
// the role derived from the durable profile record. Role is normalized once at
// resolution time and never mutated except by a fresh resolution.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// State is a session's access-control snapshot. Loading is true while an
// identity resolution is in flight; no terminal access decision may be made
// until it clears.
type State struct {
	Principal *Principal
	Loading   bool
}

// Authenticated reports whether a principal has been resolved.
func (s State) Authenticated() bool { return s.Principal != nil }

// Session is the server-side record persisted for an authenticated user. It is
// a derived, rebuildable cache of a completed resolution; the durable sources
// of truth are the provider's credential and the profiles table.
type Session struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Principal rebuilds the session's resolved principal.
func (s Session) Principal() Principal {
	return Principal{
		ID:          s.Subject,
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Role:        s.Role,
		AvatarURL:   s.AvatarURL,
	}
}

// State returns the access-control snapshot for a completed session.
func (s Session) State() State {
	p := s.Principal()
	return State{Principal: &p}
}
